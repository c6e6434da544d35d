package services

import (
	"context"

	"github.com/stinakaraba/voiceforge-tts/application/ports/inbound"
	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
	"github.com/stinakaraba/voiceforge-tts/domain"
)

const minPasswordLength = 6

type accountService struct {
	logger  outbound.LoggerPort
	gateway outbound.IdentityGatewayPort
}

func NewAccountService(logger outbound.LoggerPort, gateway outbound.IdentityGatewayPort) inbound.AccountPort {
	return &accountService{
		logger:  logger,
		gateway: gateway,
	}
}

func (s *accountService) SignUp(ctx context.Context, email, password string) (domain.SignupResult, error) {
	if email == "" || password == "" {
		return domain.SignupResult{}, domain.ErrMissingCredentials
	}
	if len(password) < minPasswordLength {
		return domain.SignupResult{}, domain.ErrWeakPassword
	}

	result, err := s.gateway.SignUp(ctx, email, password)
	if err != nil {
		return domain.SignupResult{}, err
	}

	s.logger.InfoWithFields("account created", map[string]interface{}{
		"user_id":               result.User.ID,
		"confirmation_required": result.ConfirmationRequired(),
	})
	return result, nil
}

func (s *accountService) SignIn(ctx context.Context, email, password string) (domain.LoginResult, error) {
	if email == "" || password == "" {
		return domain.LoginResult{}, domain.ErrMissingCredentials
	}

	result, err := s.gateway.SignIn(ctx, email, password)
	if err != nil {
		return domain.LoginResult{}, err
	}

	s.logger.InfoWithFields("user logged in", map[string]interface{}{
		"user_id": result.User.ID,
	})
	return result, nil
}
