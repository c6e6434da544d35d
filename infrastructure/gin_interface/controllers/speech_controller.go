package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stinakaraba/voiceforge-tts/application/ports/inbound"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/domain"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/gin_interface/dto"
	"github.com/stinakaraba/voiceforge-tts/middleware"
)

type SpeechController interface {
	Generate(c *gin.Context)
	RegisterRoutes(g *gin.Engine, auth middleware.AuthHandler)
}

type speechController struct {
	logger    outbound.LoggerPort
	generator inbound.SpeechGeneratorPort
}

func NewSpeechController(logger outbound.LoggerPort, generator inbound.SpeechGeneratorPort) SpeechController {
	return &speechController{
		logger:    logger,
		generator: generator,
	}
}

// Generate handles POST /api/tts/generate. The auth middleware has already
// resolved the caller by the time this runs; the response body is the raw
// mp3 with an attachment disposition, not JSON.
func (s *speechController) Generate(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondError(c, s.logger, domain.ErrUnauthenticated)
		return
	}

	var req dto.GenerateSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, s.logger, domain.ErrMissingText)
		return
	}

	clip, err := s.generator.Generate(c.Request.Context(), inbound.GenerateSpeechParams{
		Text:   req.Text,
		Voice:  req.Voice,
		Caller: caller,
	})
	if err != nil {
		respondError(c, s.logger, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+clip.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(clip.Audio)))
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "audio/mpeg", clip.Audio)
}

func (s *speechController) RegisterRoutes(g *gin.Engine, auth middleware.AuthHandler) {
	g.POST("/api/tts/generate", auth.AuthMiddleware(), s.Generate)
}
