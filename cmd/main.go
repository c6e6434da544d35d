package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/application/services"
	"github.com/stinakaraba/voiceforge-tts/config"
	"github.com/stinakaraba/voiceforge-tts/domain"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/adapters"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/gin_interface/controllers"
	"github.com/stinakaraba/voiceforge-tts/middleware"
)

const (
	identityCallTimeout  = 10 * time.Second
	synthesisCallTimeout = 30 * time.Second
)

func main() {
	_ = godotenv.Load()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	supabaseConfig, err := config.GetSupabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get supabase config")
	}

	inworldConfig := config.GetInworldConfig()
	if inworldConfig.ApiKey == "" {
		log.Warn().Msg("INWORLD_API_KEY is not set, generation requests will be rejected")
	}

	zeroLogger := adapters.NewZerologWrapper()

	identityFetcher := adapters.NewContentFetcher(zeroLogger, &http.Client{Timeout: identityCallTimeout})
	synthesisFetcher := adapters.NewContentFetcher(zeroLogger, &http.Client{Timeout: synthesisCallTimeout})

	var verifier outbound.TokenVerifierPort
	if supabaseConfig.JwksUrl != "" {
		verifier, err = adapters.NewJwksVerifier(supabaseConfig.JwksUrl, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create JWKS verifier")
		}
	} else {
		verifier = adapters.NewSupabaseVerifier(identityFetcher, supabaseConfig, zeroLogger)
	}

	identityGateway := adapters.NewSupabaseGateway(identityFetcher, supabaseConfig, zeroLogger)
	synthesizer := adapters.NewInworldSynthesizer(synthesisFetcher, inworldConfig, zeroLogger)

	catalog := domain.DefaultVoiceCatalog()
	validator := services.NewSpeechRequestValidator(catalog, serverConfig.MaxTextLength)

	accountService := services.NewAccountService(zeroLogger, identityGateway)
	speechGenerator := services.NewSpeechGenerator(zeroLogger, validator, synthesizer)

	authHandler := middleware.NewAuthHandler(verifier, zeroLogger)

	router := controllers.NewRouter(
		zeroLogger,
		authHandler,
		controllers.NewAuthController(zeroLogger, accountService),
		controllers.NewSpeechController(zeroLogger, speechGenerator),
		controllers.NewCatalogController(catalog),
		serverConfig.StaticDir,
	)

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	zeroLogger.InfoWithFields("VoiceForge API listening", map[string]interface{}{
		"port": serverConfig.Port,
	})

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
