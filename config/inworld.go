package config

import "os"

const defaultInworldApiUrl = "https://api.inworld.ai"

// InworldConfig holds the synthesis provider settings. ApiKey may be empty:
// the original deployment treats a missing key as a per-request
// service-not-configured failure rather than a startup error, so requests can
// be rejected cleanly while the rest of the API stays up.
type InworldConfig struct {
	ApiUrl  string
	ApiKey  string
	ModelId string
}

func GetInworldConfig() *InworldConfig {
	apiUrl := os.Getenv("INWORLD_API_URL")
	if apiUrl == "" {
		apiUrl = defaultInworldApiUrl
	}
	modelId := os.Getenv("INWORLD_MODEL_ID")
	if modelId == "" {
		modelId = "inworld-tts-1"
	}

	return &InworldConfig{
		ApiUrl:  apiUrl,
		ApiKey:  os.Getenv("INWORLD_API_KEY"),
		ModelId: modelId,
	}
}
