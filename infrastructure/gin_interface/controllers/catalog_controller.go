package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stinakaraba/voiceforge-tts/domain"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/gin_interface/dto"
)

type CatalogController interface {
	ListVoices(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type catalogController struct {
	catalog domain.VoiceCatalog
}

func NewCatalogController(catalog domain.VoiceCatalog) CatalogController {
	return &catalogController{catalog: catalog}
}

func (ctrl *catalogController) ListVoices(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VoicesResponse{Voices: ctrl.catalog.Voices()})
}

func (ctrl *catalogController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "VoiceForge API",
	})
}

func (ctrl *catalogController) RegisterRoutes(g *gin.Engine) {
	g.GET("/api/voices", ctrl.ListVoices)
	g.GET("/api/health", ctrl.Health)
}
