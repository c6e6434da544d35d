package domain

// SpeechRequest is a validated, normalized generation request: trimmed text
// plus a voice id known to exist in the catalog.
type SpeechRequest struct {
	Text    string
	VoiceID string
}

// SpeechClip is a synthesized audio payload. It exists only in memory for the
// duration of one response; nothing caches or stores it.
type SpeechClip struct {
	Audio    []byte
	Filename string
	VoiceID  string
}
