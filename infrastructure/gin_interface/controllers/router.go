package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/domain"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/gin_interface/dto"
	"github.com/stinakaraba/voiceforge-tts/middleware"
)

// NewRouter assembles the gin engine. API routes are registered before the
// static fallback: unknown /api paths get the uniform 404 JSON, everything
// else falls back to the SPA entry page.
func NewRouter(
	logger outbound.LoggerPort,
	auth middleware.AuthHandler,
	authController AuthController,
	speechController SpeechController,
	catalogController CatalogController,
	staticDir string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.ErrorWithFields(nil, "panic recovered in handler", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"panic": recovered,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: domain.ErrUnexpected.Message})
	}))
	router.Use(cors.Default())

	authController.RegisterRoutes(router)
	catalogController.RegisterRoutes(router)
	speechController.RegisterRoutes(router, auth)

	router.Static("/assets", filepath.Join(staticDir, "assets"))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Endpoint not found"})
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})

	return router
}
