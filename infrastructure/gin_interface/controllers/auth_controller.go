package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stinakaraba/voiceforge-tts/application/ports/inbound"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/domain"
	"github.com/stinakaraba/voiceforge-tts/infrastructure/gin_interface/dto"
)

type AuthController interface {
	Signup(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type authController struct {
	logger   outbound.LoggerPort
	accounts inbound.AccountPort
}

func NewAuthController(logger outbound.LoggerPort, accounts inbound.AccountPort) AuthController {
	return &authController{
		logger:   logger,
		accounts: accounts,
	}
}

func (a *authController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, a.logger, domain.ErrMissingCredentials)
		return
	}

	result, err := a.accounts.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	resp := dto.SignupResponse{
		Message: "Account created successfully",
		User:    dto.UserResponse{ID: result.User.ID, Email: result.User.Email},
	}
	if session, ok := result.Session(); ok {
		resp.Session = &dto.SessionResponse{
			AccessToken:  session.AccessToken,
			RefreshToken: session.RefreshToken,
			TokenType:    session.TokenType,
			ExpiresIn:    session.ExpiresIn,
		}
	} else {
		resp.Message = "Account created! Please check your email to confirm your account."
		resp.ConfirmationRequired = true
	}

	c.JSON(http.StatusCreated, resp)
}

func (a *authController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, a.logger, domain.ErrMissingCredentials)
		return
	}

	result, err := a.accounts.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Logged in successfully",
		User:    dto.UserResponse{ID: result.User.ID, Email: result.User.Email},
		Session: dto.SessionResponse{
			AccessToken:  result.Session.AccessToken,
			RefreshToken: result.Session.RefreshToken,
			TokenType:    result.Session.TokenType,
			ExpiresIn:    result.Session.ExpiresIn,
		},
	})
}

// Logout only acknowledges: the identity provider invalidates tokens
// client-side, there is nothing to tear down on this server.
func (a *authController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

func (a *authController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/auth/signup", a.Signup)
	g.POST("/api/auth/login", a.Login)
	g.POST("/api/auth/logout", a.Logout)
}
