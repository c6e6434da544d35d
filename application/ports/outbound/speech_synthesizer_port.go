package outbound

import (
	"context"

	"github.com/stinakaraba/voiceforge-tts/domain"
)

// SpeechSynthesizerPort turns validated text into audio bytes via the external
// synthesis provider. Implementations map provider failures onto the domain
// error taxonomy and never leak provider detail in returned errors.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req domain.SpeechRequest) ([]byte, error)
}
