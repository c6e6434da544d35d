package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/config"
	"github.com/stinakaraba/voiceforge-tts/domain"
)

const inworldVoicePath = "/tts/v1/voice"

type InworldRequest struct {
	Text    string `json:"text"`
	VoiceId string `json:"voiceId"`
	ModelId string `json:"modelId"`
}

// InworldResponse is the provider's success envelope. The audio arrives
// base64-encoded, not as raw bytes.
type InworldResponse struct {
	AudioContent string `json:"audioContent"`
}

type inworldSynthesizer struct {
	ContentFetcher
	inworldConfig *config.InworldConfig
	logger        outbound.LoggerPort
}

func NewInworldSynthesizer(contentFetcher ContentFetcher, inworldConfig *config.InworldConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &inworldSynthesizer{
		ContentFetcher: contentFetcher,
		inworldConfig:  inworldConfig,
		logger:         logger,
	}
}

// Synthesize proxies one validated request to Inworld and maps the outcome
// onto the domain error taxonomy. Provider detail (status codes, error
// bodies) stays in the logs; returned errors carry only caller-safe messages.
func (a *inworldSynthesizer) Synthesize(ctx context.Context, speechReq domain.SpeechRequest) ([]byte, error) {
	if a.inworldConfig.ApiKey == "" {
		a.logger.Error(nil, "INWORLD_API_KEY is not configured")
		return nil, domain.ErrServiceNotConfigured
	}

	req, err := a.getRequest(ctx, speechReq.Text, speechReq.VoiceID)
	if err != nil {
		a.logger.Error(err, "Failed to construct the synthesis request")
		return nil, domain.ErrSynthesisFailed
	}

	res, err := a.FetchContent(req)
	if err != nil {
		return nil, domain.ErrSynthesisFailed
	}

	switch {
	case res.StatusCode == http.StatusOK:
	case res.StatusCode == http.StatusTooManyRequests:
		a.logger.WarnWithFields("Inworld rate limit hit", map[string]interface{}{
			"status": res.StatusCode,
		})
		return nil, domain.ErrRateLimited
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		a.logger.ErrorWithFields(nil, "Inworld rejected the API credential", map[string]interface{}{
			"status": res.StatusCode,
			"body":   string(res.Body),
		})
		return nil, domain.ErrServiceMisconfigured
	default:
		a.logger.ErrorWithFields(nil, "Inworld API error", map[string]interface{}{
			"status": res.StatusCode,
			"body":   string(res.Body),
		})
		return nil, domain.ErrSynthesisFailed
	}

	var envelope InworldResponse
	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		a.logger.Error(err, "Failed to unmarshal the Inworld response envelope")
		return nil, domain.ErrSynthesisFailed
	}

	audio, err := base64.StdEncoding.DecodeString(envelope.AudioContent)
	if err != nil {
		a.logger.Error(err, "Failed to decode the Inworld audio content")
		return nil, domain.ErrSynthesisFailed
	}

	return audio, nil
}

func (a *inworldSynthesizer) getRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	reqBody := InworldRequest{
		Text:    text,
		VoiceId: voiceID,
		ModelId: a.inworldConfig.ModelId,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.inworldConfig.ApiUrl+inworldVoicePath, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Basic "+a.inworldConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
