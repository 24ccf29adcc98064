package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
	"github.com/iac-center/praktika-backend/internal/pkg/auth"
)

// AuthService exchanges Telegram Login Widget payloads for API tokens.
type AuthService interface {
	LoginWithTelegram(ctx context.Context, req *dto.TelegramLoginRequest) (*dto.TokenResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	jwtService *auth.JWTService
	resolver   RoleResolver
	botToken   string
}

// NewAuthService creates a new authentication service instance
func NewAuthService(jwtService *auth.JWTService, resolver RoleResolver, botToken string) AuthService {
	return &authServiceImpl{
		jwtService: jwtService,
		resolver:   resolver,
		botToken:   botToken,
	}
}

// LoginWithTelegram verifies the widget signature and issues an access
// token for the identity. The response also carries the resolved role so
// clients can shape their UI, though every request is re-authorized
// server-side.
func (s *authServiceImpl) LoginWithTelegram(ctx context.Context, req *dto.TelegramLoginRequest) (*dto.TokenResponse, error) {
	if req == nil || req.ID == "" {
		return nil, apperrors.NewValidationError("telegram login payload is incomplete")
	}

	err := auth.VerifyLogin(auth.LoginData{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		PhotoURL:  req.PhotoURL,
		AuthDate:  req.AuthDate,
		Hash:      req.Hash,
	}, s.botToken, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrLoginExpired) {
			return nil, fmt.Errorf("%w: login data expired", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: signature verification failed", apperrors.ErrInvalidCredentials)
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(req.ID, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	role, err := s.resolver.Resolve(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("error resolving role: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Role:        role.String(),
	}, nil
}
