package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/domain"
)

const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
)

type AuthHandler interface {
	AuthMiddleware() gin.HandlerFunc
}

type authHandler struct {
	verifier outbound.TokenVerifierPort
	logger   outbound.LoggerPort
}

func NewAuthHandler(verifier outbound.TokenVerifierPort, logger outbound.LoggerPort) AuthHandler {
	return &authHandler{
		verifier: verifier,
		logger:   logger,
	}
}

// AuthMiddleware guards protected routes. Requests without a well-formed
// bearer token are rejected before any downstream handler runs; on success
// the resolved identity is attached to the gin context.
func (h *authHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Message})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		identity, err := h.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidToken.Message})
			return
		}

		c.Set(ContextUserIDKey, identity.ID)
		c.Set(ContextUserEmailKey, identity.Email)

		c.Next()
	}
}

// IdentityFromContext reads the identity the gate attached. The second return
// is false on routes that never went through the middleware.
func IdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	id, ok := c.Get(ContextUserIDKey)
	if !ok {
		return domain.Identity{}, false
	}
	email, _ := c.Get(ContextUserEmailKey)
	userID, _ := id.(string)
	userEmail, _ := email.(string)
	if userID == "" {
		return domain.Identity{}, false
	}
	return domain.Identity{ID: userID, Email: userEmail}, true
}
