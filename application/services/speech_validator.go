package services

import (
	"strings"
	"unicode/utf8"

	"github.com/stinakaraba/voiceforge-tts/domain"
)

// SpeechRequestValidator checks shape and bounds of inbound generation
// requests against the voice catalog and the configured text ceiling.
// Validation is pure: no I/O, no state.
type SpeechRequestValidator struct {
	catalog       domain.VoiceCatalog
	maxTextLength int
}

func NewSpeechRequestValidator(catalog domain.VoiceCatalog, maxTextLength int) SpeechRequestValidator {
	return SpeechRequestValidator{
		catalog:       catalog,
		maxTextLength: maxTextLength,
	}
}

// Validate normalizes {text, voice} into a SpeechRequest ready for synthesis.
// Text is nil when the field was absent or not a string. An empty voice falls
// back to the catalog default; anything else must match a catalog id exactly.
func (v SpeechRequestValidator) Validate(text *string, voice string) (domain.SpeechRequest, error) {
	if text == nil {
		return domain.SpeechRequest{}, domain.ErrMissingText
	}

	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return domain.SpeechRequest{}, domain.ErrEmptyText
	}
	if utf8.RuneCountInString(trimmed) > v.maxTextLength {
		return domain.SpeechRequest{}, domain.NewTextTooLongError(v.maxTextLength)
	}

	if voice == "" {
		voice = domain.DefaultVoiceID
	}
	if !v.catalog.Contains(voice) {
		return domain.SpeechRequest{}, domain.NewInvalidVoiceError(v.catalog.IDs())
	}

	return domain.SpeechRequest{Text: trimmed, VoiceID: voice}, nil
}
