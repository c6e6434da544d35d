package inbound

import (
	"context"

	"github.com/stinakaraba/voiceforge-tts/domain"
)

type GenerateSpeechParams struct {
	// Text is nil when the field was absent or not a string in the request.
	Text *string
	// Voice is empty when omitted; the catalog default applies.
	Voice string
	// Caller identifies who triggered generation, for logging only.
	Caller domain.Identity
}

type SpeechGeneratorPort interface {
	Generate(ctx context.Context, params GenerateSpeechParams) (domain.SpeechClip, error)
}
