package auth

import (
	"context"
	"fmt"

	"github.com/atlas-hris/leave-console-go/internal/domain/auth"
	"github.com/atlas-hris/leave-console-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	verifier   auth.AdminVerifier
	jwtService jwt.Service
}

func NewAuthService(verifier auth.AdminVerifier, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. Credentials are checked by the
// upstream HR API; on success a console session token is issued carrying
// the admin id every other endpoint is scoped by.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	profile, err := a.verifier.VerifyAdmin(ctx, req.Email, req.Password)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(profile.AdminID, profile.Email, profile.Name)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		AdminID:     profile.AdminID,
		AdminName:   profile.Name,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(token)
	return nil
}
