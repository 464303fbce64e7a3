package hrapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/atlas-hris/leave-console-go/internal/domain/auth"
)

const adminLoginPath = "/adminLogin"

// VerifyAdmin implements auth.AdminVerifier. The console holds no
// credentials of its own; the upstream HR API is the authority.
func (c *Client) VerifyAdmin(ctx context.Context, email, password string) (auth.AdminProfile, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	body, err := c.post(ctx, adminLoginPath, payload)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return auth.AdminProfile{}, auth.ErrInvalidCredentials
		}
		return auth.AdminProfile{}, err
	}

	var parsed struct {
		Data struct {
			AdminID flexString `json:"admin_id"`
			Name    string     `json:"admin_name"`
			Email   string     `json:"email"`
		} `json:"data"`
		AdminID flexString `json:"admin_id"`
		Name    string     `json:"admin_name"`
		Email   string     `json:"email"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return auth.AdminProfile{}, fmt.Errorf("decode admin login: %w", err)
	}

	profile := auth.AdminProfile{
		AdminID: parsed.Data.AdminID.String(),
		Name:    parsed.Data.Name,
		Email:   parsed.Data.Email,
	}
	if profile.AdminID == "" {
		profile = auth.AdminProfile{
			AdminID: parsed.AdminID.String(),
			Name:    parsed.Name,
			Email:   parsed.Email,
		}
	}
	if profile.AdminID == "" {
		return auth.AdminProfile{}, auth.ErrInvalidCredentials
	}
	return profile, nil
}
