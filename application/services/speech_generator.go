package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/stinakaraba/voiceforge-tts/application/ports/inbound"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/domain"
)

const (
	filenamePreviewLength = 30
	logPreviewLength      = 50
)

type speechGenerator struct {
	logger      outbound.LoggerPort
	validator   SpeechRequestValidator
	synthesizer outbound.SpeechSynthesizerPort
}

func NewSpeechGenerator(
	logger outbound.LoggerPort,
	validator SpeechRequestValidator,
	synthesizer outbound.SpeechSynthesizerPort,
) inbound.SpeechGeneratorPort {
	return &speechGenerator{
		logger:      logger,
		validator:   validator,
		synthesizer: synthesizer,
	}
}

// Generate validates the request and proxies it to the synthesis provider.
// The provider is only ever reached with a validated payload and a resolved
// caller; validation failures return before any network call.
func (s *speechGenerator) Generate(ctx context.Context, params inbound.GenerateSpeechParams) (domain.SpeechClip, error) {
	req, err := s.validator.Validate(params.Text, params.Voice)
	if err != nil {
		return domain.SpeechClip{}, err
	}

	requestID := uuid.NewString()
	s.logger.InfoWithFields("generating audio", map[string]interface{}{
		"request_id": requestID,
		"user_id":    params.Caller.ID,
		"voice":      req.VoiceID,
		"text":       truncate(req.Text, logPreviewLength),
	})

	audio, err := s.synthesizer.Synthesize(ctx, req)
	if err != nil {
		s.logger.ErrorWithFields(err, "audio generation failed", map[string]interface{}{
			"request_id": requestID,
			"user_id":    params.Caller.ID,
			"voice":      req.VoiceID,
		})
		return domain.SpeechClip{}, err
	}

	clip := domain.SpeechClip{
		Audio:    audio,
		Filename: deriveFilename(req.Text, req.VoiceID),
		VoiceID:  req.VoiceID,
	}

	s.logger.InfoWithFields("audio generated", map[string]interface{}{
		"request_id": requestID,
		"filename":   clip.Filename,
		"bytes":      len(clip.Audio),
	})

	return clip, nil
}

// deriveFilename builds the advisory download name: the first 30 characters
// of the trimmed text with every non-alphanumeric byte replaced by an
// underscore, lowercased, prefixed with the lowercased voice id. It carries
// no uniqueness guarantee.
func deriveFilename(text, voiceID string) string {
	preview := []rune(text)
	if len(preview) > filenamePreviewLength {
		preview = preview[:filenamePreviewLength]
	}

	var b strings.Builder
	b.Grow(len(preview))
	for _, r := range string(preview) {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return "voiceforge_" + strings.ToLower(voiceID) + "_" + strings.ToLower(b.String()) + ".mp3"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
