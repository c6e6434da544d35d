package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/domain"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/gin_interface/dto"
)

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.ErrCodeMissingField, domain.ErrCodeEmptyText, domain.ErrCodeTextTooLong,
		domain.ErrCodeInvalidVoice, domain.ErrCodeSignupRejected:
		return http.StatusBadRequest
	case domain.ErrCodeUnauthenticated, domain.ErrCodeInvalidToken, domain.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domain.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a domain error onto its HTTP status and caller-safe
// message. Anything outside the taxonomy is the last-resort backstop: logged
// in full, surfaced as a generic 500.
func respondError(c *gin.Context, logger outbound.LoggerPort, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		c.JSON(statusForCode(domainErr.Code), dto.ErrorResponse{Error: domainErr.Message})
		return
	}

	logger.ErrorWithFields(err, "unclassified error reached the handler", map[string]interface{}{
		"path": c.Request.URL.Path,
	})
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: domain.ErrUnexpected.Message})
}
