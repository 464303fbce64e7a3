package http

import (
	"log/slog"
	"os"

	"github.com/atlas-hris/leave-console-go/internal/handler/http/middleware"
	"github.com/atlas-hris/leave-console-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires an authenticated admin
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(middleware.AdminOnly)

			r.Route("/leave", func(r chi.Router) {
				r.Get("/requests", leaveHandler.ListRequests)
				r.Get("/balances", leaveHandler.ListBalances)
				r.Get("/decisions", leaveHandler.ListDecisions)

				r.Route("/requests/{id}", func(r chi.Router) {
					r.Post("/approve", leaveHandler.ApproveRequest)
					r.Post("/reject", leaveHandler.RejectRequest)
					r.Put("/reject-draft", leaveHandler.UpdateRejectDraft)
					r.Delete("/reject-draft", leaveHandler.DiscardRejectDraft)
				})
			})
		})
	})
	return r
}
