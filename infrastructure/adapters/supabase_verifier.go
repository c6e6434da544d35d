package adapters

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/config"
	"github.com/stinakaraba/voiceforge-tts/domain"
)

const userPath = "/auth/v1/user"

// supabaseVerifier resolves bearer tokens with a network call to the identity
// provider's user endpoint. Any non-OK answer collapses to the generic
// invalid-token error; provider detail only reaches the logs.
type supabaseVerifier struct {
	ContentFetcher
	supabaseConfig *config.SupabaseConfig
	logger         outbound.LoggerPort
}

func NewSupabaseVerifier(contentFetcher ContentFetcher, supabaseConfig *config.SupabaseConfig, logger outbound.LoggerPort) outbound.TokenVerifierPort {
	return &supabaseVerifier{
		ContentFetcher: contentFetcher,
		supabaseConfig: supabaseConfig,
		logger:         logger,
	}
}

func (v *supabaseVerifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", v.supabaseConfig.Url+userPath, nil)
	if err != nil {
		v.logger.Error(err, "Failed to construct the token verification request")
		return domain.Identity{}, domain.ErrInvalidToken
	}

	req.Header.Set("apikey", v.supabaseConfig.AnonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := v.FetchContent(req)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	if res.StatusCode != http.StatusOK {
		v.logger.WarnWithFields("token rejected by identity provider", map[string]interface{}{
			"status": res.StatusCode,
		})
		return domain.Identity{}, domain.ErrInvalidToken
	}

	var user supabaseUser
	if err := json.Unmarshal(res.Body, &user); err != nil {
		v.logger.Error(err, "Failed to unmarshal the user response")
		return domain.Identity{}, domain.ErrInvalidToken
	}
	if user.ID == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{ID: user.ID, Email: user.Email}, nil
}
