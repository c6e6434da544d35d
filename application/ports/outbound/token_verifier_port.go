package outbound

import (
	"context"

	"github.com/stinakaraba/voiceforge-tts/domain"
)

// TokenVerifierPort resolves a raw bearer token to a caller identity. A
// failure means the token is missing a valid subject, expired, or forged; the
// caller only ever sees the generic invalid-token error.
type TokenVerifierPort interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}
