package adapters

import (
	"context"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/domain"
)

type identityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// jwksVerifier validates bearer tokens locally against the identity
// provider's JWKS instead of calling the user endpoint per request. The key
// set refreshes in the background; a verification itself does no I/O.
type jwksVerifier struct {
	jwks   *keyfunc.JWKS
	logger outbound.LoggerPort
}

func NewJwksVerifier(jwksURL string, logger outbound.LoggerPort) (outbound.TokenVerifierPort, error) {
	options := keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			logger.Error(err, "Failed to refresh the JWKS")
		},
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  time.Minute * 5,
		RefreshTimeout:    time.Second * 10,
		RefreshUnknownKID: true,
	}

	jwks, err := keyfunc.Get(jwksURL, options)
	if err != nil {
		return nil, err
	}

	return &jwksVerifier{jwks: jwks, logger: logger}, nil
}

func (v *jwksVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	var claims identityClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, v.jwks.Keyfunc)
	if err != nil || !parsed.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{ID: claims.Subject, Email: claims.Email}, nil
}
