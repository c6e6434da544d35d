package outbound

import (
	"context"

	"github.com/stinakaraba/voiceforge-tts/domain"
)

// IdentityGatewayPort forwards account operations to the external identity
// provider. This service keeps no account state of its own.
type IdentityGatewayPort interface {
	SignUp(ctx context.Context, email, password string) (domain.SignupResult, error)
	SignIn(ctx context.Context, email, password string) (domain.LoginResult, error)
}
