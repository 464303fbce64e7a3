package auth

import "context"

// AdminVerifier - upstream credential check
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, email, password string) (AdminProfile, error)
}

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
}
