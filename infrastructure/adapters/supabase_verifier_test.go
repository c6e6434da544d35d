package adapters

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stinakaraba/voiceforge-tts/config"
	"github.com/stinakaraba/voiceforge-tts/domain"
)

func newVerifierAgainst(serverURL string) *supabaseVerifier {
	logger := NewZerologWrapper()
	fetcher := NewContentFetcher(logger, &http.Client{Timeout: 5 * time.Second})
	verifier := NewSupabaseVerifier(fetcher, &config.SupabaseConfig{
		Url:        serverURL,
		ServiceKey: "service-key",
		AnonKey:    "anon-key",
	}, logger)
	return verifier.(*supabaseVerifier)
}

func TestVerifyResolvesIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer the-token" {
			t.Errorf("token not forwarded, got %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"id": "u9", "email": "x@y.com"}`))
	}))
	defer server.Close()

	identity, err := newVerifierAgainst(server.URL).Verify(context.Background(), "the-token")
	if err != nil {
		t.Fatal("verify failed:", err)
	}
	if identity.ID != "u9" || identity.Email != "x@y.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestVerifyRejectsNonOKStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg": "JWT expired at 2024-01-01, issuer project-ref-xyz"}`))
	}))
	defer server.Close()

	_, err := newVerifierAgainst(server.URL).Verify(context.Background(), "stale-token")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if err.Error() != domain.ErrInvalidToken.Message {
		t.Fatalf("provider detail leaked into caller-visible error: %q", err.Error())
	}
}

func TestVerifyRejectsResponseWithoutSubject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := newVerifierAgainst(server.URL).Verify(context.Background(), "odd-token")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
