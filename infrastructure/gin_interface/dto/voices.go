package dto

import "github.com/stinakaraba/voiceforge-tts/domain"

type VoicesResponse struct {
	Voices []domain.Voice `json:"voices"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
