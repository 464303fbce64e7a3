package main

import (
	"fmt"
	"net/http"

	"github.com/atlas-hris/leave-console-go/internal/config"
	appHTTP "github.com/atlas-hris/leave-console-go/internal/handler/http"
	"github.com/atlas-hris/leave-console-go/internal/pkg/database"
	"github.com/atlas-hris/leave-console-go/internal/pkg/jwt"
	"github.com/atlas-hris/leave-console-go/internal/repository/hrapi"
	"github.com/atlas-hris/leave-console-go/internal/repository/postgresql"
	authService "github.com/atlas-hris/leave-console-go/internal/service/auth"
	leaveService "github.com/atlas-hris/leave-console-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	hrClient := hrapi.NewClient(cfg.HRAPI)
	decisionRepo := postgresql.NewDecisionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(hrClient, JWTService)
	leaveSvc := leaveService.NewLeaveService(hrClient, hrClient, hrClient, decisionRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		leaveHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
