package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stinakaraba/voiceforge-tts/application/ports/inbound"
	"github.com/stinakaraba/voiceforge-tts/application/services"
	"github.com/stinakaraba/voiceforge-tts/domain"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/adapters"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/gin_interface/dto"
	"github.com/stinakaraba/voiceforge-tts/middleware"
)

type stubVerifier struct {
	identity domain.Identity
	err      error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (domain.Identity, error) {
	return s.identity, s.err
}

type stubSynthesizer struct {
	calls int
	audio []byte
	err   error
}

func (s *stubSynthesizer) Synthesize(_ context.Context, _ domain.SpeechRequest) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.audio, nil
}

type stubAccounts struct{}

func (stubAccounts) SignUp(_ context.Context, _, _ string) (domain.SignupResult, error) {
	return domain.ConfirmationPendingSignup(domain.User{ID: "u1", Email: "a@b.com"}), nil
}

func (stubAccounts) SignIn(_ context.Context, _, _ string) (domain.LoginResult, error) {
	return domain.LoginResult{
		User:    domain.User{ID: "u1", Email: "a@b.com"},
		Session: domain.Session{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 3600},
	}, nil
}

func newTestRouter(t *testing.T, verifier *stubVerifier, synth *stubSynthesizer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	staticDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>voiceforge</html>"), 0o644); err != nil {
		t.Fatal("failed to write index.html:", err)
	}

	logger := adapters.NewZerologWrapper()
	catalog := domain.DefaultVoiceCatalog()
	validator := services.NewSpeechRequestValidator(catalog, 5000)

	var generator inbound.SpeechGeneratorPort = services.NewSpeechGenerator(logger, validator, synth)

	return NewRouter(
		logger,
		middleware.NewAuthHandler(verifier, logger),
		NewAuthController(logger, stubAccounts{}),
		NewSpeechController(logger, generator),
		NewCatalogController(catalog),
		staticDir,
	)
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListVoicesReturnsFullCatalog(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{}, &stubSynthesizer{})

	rec := doJSON(router, "GET", "/api/voices", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.VoicesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal("failed to decode response:", err)
	}
	if len(resp.Voices) != 6 {
		t.Fatalf("expected 6 voices, got %d", len(resp.Voices))
	}
	for _, v := range resp.Voices {
		if v.ID == "" || v.Name == "" || v.Description == "" {
			t.Fatalf("voice entry has empty fields: %+v", v)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{}, &stubSynthesizer{})

	rec := doJSON(router, "GET", "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal("failed to decode response:", err)
	}
	if resp.Status != "ok" || resp.Service != "VoiceForge API" || resp.Timestamp == "" {
		t.Fatalf("unexpected health payload: %+v", resp)
	}
}

func TestUnknownApiRouteReturnsUniform404(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{}, &stubSynthesizer{})

	rec := doJSON(router, "GET", "/api/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal("failed to decode response:", err)
	}
	if resp.Error != "Endpoint not found" {
		t.Fatalf("expected uniform 404 message, got %q", resp.Error)
	}
}

func TestNonApiRouteFallsBackToIndex(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{}, &stubSynthesizer{})

	rec := doJSON(router, "GET", "/some/spa/route", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("voiceforge")) {
		t.Fatal("expected the SPA entry page body")
	}
}

func TestGenerateRequiresAuthentication(t *testing.T) {
	synth := &stubSynthesizer{audio: []byte("mp3")}
	router := newTestRouter(t, &stubVerifier{err: domain.ErrInvalidToken}, synth)

	rec := doJSON(router, "POST", "/api/tts/generate", "", map[string]string{"text": "hello"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
	if synth.calls != 0 {
		t.Fatal("synthesizer must never run for unauthenticated callers")
	}
}

func TestGenerateValidationError(t *testing.T) {
	synth := &stubSynthesizer{audio: []byte("mp3")}
	verifier := &stubVerifier{identity: domain.Identity{ID: "u1"}}
	router := newTestRouter(t, verifier, synth)

	rec := doJSON(router, "POST", "/api/tts/generate", "tok", map[string]interface{}{"voice": "Ashley"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing text, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal("failed to decode response:", err)
	}
	if resp.Error != "Text is required" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
	if synth.calls != 0 {
		t.Fatal("synthesizer must never run for invalid payloads")
	}
}

func TestGenerateNonStringTextIsMissingField(t *testing.T) {
	synth := &stubSynthesizer{audio: []byte("mp3")}
	verifier := &stubVerifier{identity: domain.Identity{ID: "u1"}}
	router := newTestRouter(t, verifier, synth)

	rec := doJSON(router, "POST", "/api/tts/generate", "tok", map[string]interface{}{"text": 12345})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-string text, got %d", rec.Code)
	}
	if synth.calls != 0 {
		t.Fatal("synthesizer must never run for invalid payloads")
	}
}

func TestGenerateStreamsAudioWithHeaders(t *testing.T) {
	synth := &stubSynthesizer{audio: []byte("binary-mp3-payload")}
	verifier := &stubVerifier{identity: domain.Identity{ID: "u1", Email: "a@b.com"}}
	router := newTestRouter(t, verifier, synth)

	rec := doJSON(router, "POST", "/api/tts/generate", "tok", map[string]string{
		"text":  "Hello, World! 123",
		"voice": "Ashley",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if ct := rec.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Fatalf("expected audio/mpeg, got %q", ct)
	}
	wantDisposition := `attachment; filename="voiceforge_ashley_hello__world__123.mp3"`
	if cd := rec.Header().Get("Content-Disposition"); cd != wantDisposition {
		t.Fatalf("expected disposition %q, got %q", wantDisposition, cd)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Fatalf("expected no-cache, got %q", cc)
	}
	if rec.Body.String() != "binary-mp3-payload" {
		t.Fatal("response body is not the raw audio payload")
	}
}

func TestGenerateMapsRateLimitTo429(t *testing.T) {
	synth := &stubSynthesizer{err: domain.ErrRateLimited}
	verifier := &stubVerifier{identity: domain.Identity{ID: "u1"}}
	router := newTestRouter(t, verifier, synth)

	rec := doJSON(router, "POST", "/api/tts/generate", "tok", map[string]string{"text": "hello"})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal("failed to decode response:", err)
	}
	if resp.Error != domain.ErrRateLimited.Message {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestGenerateMapsMissingCredentialTo500(t *testing.T) {
	synth := &stubSynthesizer{err: domain.ErrServiceNotConfigured}
	verifier := &stubVerifier{identity: domain.Identity{ID: "u1"}}
	router := newTestRouter(t, verifier, synth)

	rec := doJSON(router, "POST", "/api/tts/generate", "tok", map[string]string{"text": "hello"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSignupAndLoginShapes(t *testing.T) {
	router := newTestRouter(t, &stubVerifier{}, &stubSynthesizer{})

	rec := doJSON(router, "POST", "/api/auth/signup", "", map[string]string{
		"email":    "a@b.com",
		"password": "secret123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var signup dto.SignupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &signup); err != nil {
		t.Fatal("failed to decode signup response:", err)
	}
	if !signup.ConfirmationRequired || signup.Session != nil {
		t.Fatalf("expected confirmation-pending shape, got %+v", signup)
	}

	rec = doJSON(router, "POST", "/api/auth/login", "", map[string]string{
		"email":    "a@b.com",
		"password": "secret123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var login dto.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatal("failed to decode login response:", err)
	}
	if login.Session.AccessToken != "tok" || login.User.ID != "u1" {
		t.Fatalf("unexpected login payload: %+v", login)
	}

	rec = doJSON(router, "POST", "/api/auth/logout", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", rec.Code)
	}
}
