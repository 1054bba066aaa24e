package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobmatch-backend/config"
	_ "go-jobmatch-backend/docs" // Important for Swagger
	v1 "go-jobmatch-backend/internal/delivery/http/v1"
	"go-jobmatch-backend/internal/repository/postgres"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/auth"
	"go-jobmatch-backend/pkg/database"
	"go-jobmatch-backend/pkg/linkedin"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/redis"
	"go-jobmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Match Backend API
// @version         1.0
// @description     Two-sided job-matching backend: LinkedIn-authenticated candidates, credentialed companies.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job match backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Log.Info("Database connection established")

	// 4. Setup Redis (optional; rate limiter falls back to memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)

	// 6. Setup Collaborators
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	linkedinClient := linkedin.NewClient(cfg.LinkedInClientID, cfg.LinkedInClientSecret, cfg.LinkedInRedirectURI)

	validate := validator.New()
	validation.RegisterValidators(validate)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(candidateRepo, linkedinClient, tokens)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	searchUC := usecase.NewSearchUsecase(candidateRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, tokens, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CandidateUC: candidateUC,
		SearchUC:    searchUC,
		CompanyUC:   companyUC,
		Tokens:      tokens,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
