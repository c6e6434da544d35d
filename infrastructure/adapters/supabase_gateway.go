package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/config"
	"github.com/stinakaraba/voiceforge-tts/domain"
)

const (
	signupPath        = "/auth/v1/signup"
	passwordGrantPath = "/auth/v1/token?grant_type=password"
)

type supabaseCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// supabaseSession covers both GoTrue success shapes: a token grant carries
// access_token plus a nested user, a confirmation-pending signup returns the
// bare user object at the top level.
type supabaseSession struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *supabaseUser `json:"user"`

	supabaseUser
}

// supabaseError covers the provider's error shapes ({msg}, {message} and
// {error_description} all occur depending on endpoint and version).
type supabaseError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e supabaseError) text(fallback string) string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	}
	return fallback
}

type supabaseGateway struct {
	ContentFetcher
	supabaseConfig *config.SupabaseConfig
	logger         outbound.LoggerPort
}

func NewSupabaseGateway(contentFetcher ContentFetcher, supabaseConfig *config.SupabaseConfig, logger outbound.LoggerPort) outbound.IdentityGatewayPort {
	return &supabaseGateway{
		ContentFetcher: contentFetcher,
		supabaseConfig: supabaseConfig,
		logger:         logger,
	}
}

func (g *supabaseGateway) SignUp(ctx context.Context, email, password string) (domain.SignupResult, error) {
	res, err := g.post(ctx, signupPath, supabaseCredentials{Email: email, Password: password})
	if err != nil {
		return domain.SignupResult{}, domain.ErrUnexpected
	}

	if res.StatusCode != http.StatusOK {
		var provErr supabaseError
		_ = json.Unmarshal(res.Body, &provErr)
		g.logger.WarnWithFields("signup rejected by identity provider", map[string]interface{}{
			"status": res.StatusCode,
		})
		return domain.SignupResult{}, domain.NewSignupRejectedError(provErr.text("Failed to create account"))
	}

	var session supabaseSession
	if err := json.Unmarshal(res.Body, &session); err != nil {
		g.logger.Error(err, "Failed to unmarshal the signup response")
		return domain.SignupResult{}, domain.ErrUnexpected
	}

	if session.AccessToken == "" {
		return domain.ConfirmationPendingSignup(domain.User{
			ID:    session.supabaseUser.ID,
			Email: session.supabaseUser.Email,
		}), nil
	}

	return domain.IssuedSignup(toUser(session), toSession(session)), nil
}

func (g *supabaseGateway) SignIn(ctx context.Context, email, password string) (domain.LoginResult, error) {
	res, err := g.post(ctx, passwordGrantPath, supabaseCredentials{Email: email, Password: password})
	if err != nil {
		return domain.LoginResult{}, domain.ErrUnexpected
	}

	if res.StatusCode != http.StatusOK {
		var provErr supabaseError
		_ = json.Unmarshal(res.Body, &provErr)
		g.logger.WarnWithFields("login rejected by identity provider", map[string]interface{}{
			"status": res.StatusCode,
		})
		return domain.LoginResult{}, domain.NewInvalidCredentialsError(provErr.text("Invalid login credentials"))
	}

	var session supabaseSession
	if err := json.Unmarshal(res.Body, &session); err != nil {
		g.logger.Error(err, "Failed to unmarshal the login response")
		return domain.LoginResult{}, domain.ErrUnexpected
	}

	return domain.LoginResult{User: toUser(session), Session: toSession(session)}, nil
}

func (g *supabaseGateway) post(ctx context.Context, path string, body supabaseCredentials) (FetchedResponse, error) {
	jsonPayload, err := json.Marshal(body)
	if err != nil {
		return FetchedResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.supabaseConfig.Url+path, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return FetchedResponse{}, err
	}

	req.Header.Set("apikey", g.supabaseConfig.AnonKey)
	req.Header.Set("Content-Type", "application/json")

	return g.FetchContent(req)
}

func toUser(s supabaseSession) domain.User {
	if s.User == nil {
		return domain.User{}
	}
	return domain.User{ID: s.User.ID, Email: s.User.Email}
}

func toSession(s supabaseSession) domain.Session {
	return domain.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
	}
}
