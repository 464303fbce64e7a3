package middleware

import (
	"net/http"

	"github.com/atlas-hris/leave-console-go/internal/domain/auth"
	"github.com/atlas-hris/leave-console-go/internal/handler/http/response"
	"github.com/atlas-hris/leave-console-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			// Logged-out tokens stay cryptographically valid until expiry,
			// so revocation is checked here.
			if raw := jwtauth.TokenFromHeader(r); raw == "" || jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
