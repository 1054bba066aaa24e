package v1

import (
	"net/http"
	"time"

	"go-jobmatch-backend/config"
	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CandidateUC domain.CandidateUsecase
	SearchUC    domain.CandidateSearchUsecase
	CompanyUC   domain.CompanyUsecase
	Tokens      *auth.TokenService
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)

	// Public routes
	NewAuthHandler(api, deps.AuthUC, deps.Config)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewCompanyHandler(api, protected, deps.CompanyUC, loginLimiter)
	NewCandidateHandler(protected, deps.CandidateUC, deps.SearchUC)

	return r
}
