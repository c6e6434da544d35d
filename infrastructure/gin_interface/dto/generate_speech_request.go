package dto

// GenerateSpeechRequest deliberately binds Text as a pointer: absence and a
// non-string JSON value both have to surface as a missing-field error, which
// a plain string binding cannot distinguish from "".
type GenerateSpeechRequest struct {
	Text  *string `json:"text"`
	Voice string  `json:"voice"`
}
