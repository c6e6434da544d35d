package inbound

import (
	"context"

	"github.com/stinakaraba/voiceforge-tts/domain"
)

type AccountPort interface {
	SignUp(ctx context.Context, email, password string) (domain.SignupResult, error)
	SignIn(ctx context.Context, email, password string) (domain.LoginResult, error)
}
