package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
	"github.com/PaulBilal/Edunova-School-System/internal/handler/http/dto"
	"github.com/PaulBilal/Edunova-School-System/internal/handler/http/middleware"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/logger"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/metrics"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RouterOptions carries the transport settings taken from configuration.
type RouterOptions struct {
	AllowedOrigins     []string
	RateLimitPerSecond float64
}

type Router struct {
	authHandler *AuthHandler
	authUC      usecasecontract.IAuthUseCase
	health      HealthChecker
	metrics     *metrics.Metrics
	uuidGen     contract.IUUIDGenerator
	logger      *logger.ZapLogger
	options     RouterOptions
}

func NewRouter(authUC usecasecontract.IAuthUseCase, verificationUC usecasecontract.IEmailVerificationUC, health HealthChecker, m *metrics.Metrics, uuidGen contract.IUUIDGenerator, appLogger *logger.ZapLogger, options RouterOptions) *Router {
	return &Router{
		authHandler: NewAuthHandler(authUC, verificationUC, appLogger, m),
		authUC:      authUC,
		health:      health,
		metrics:     m,
		uuidGen:     uuidGen,
		logger:      appLogger,
		options:     options,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID(r.uuidGen))
	router.Use(middleware.RequestLogger(r.logger.Zap()))
	router.Use(middleware.Metrics(r.metrics))
	router.Use(cors.New(corsConfig(r.options.AllowedOrigins)))

	router.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	router.GET("/healthz", r.healthz)

	auth := router.Group("/api/auth")
	if r.options.RateLimitPerSecond > 0 {
		auth.Use(middleware.RateLimiter(middleware.NewLimiter(r.options.RateLimitPerSecond)))
	}
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/verify-email", r.authHandler.VerifyEmail)
		auth.POST("/resend-verification", r.authHandler.ResendVerification)
		auth.GET("/profile", middleware.AuthMiddleware(r.authUC), r.authHandler.GetProfile)
	}
}

// corsConfig allows the listed origins with credentials. Requests without an
// Origin header are not CORS requests and pass untouched.
func corsConfig(allowed []string) cors.Config {
	origins := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		origins[o] = struct{}{}
	}
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			_, ok := origins[origin]
			return ok
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func (r *Router) healthz(c *gin.Context) {
	if r.health == nil {
		SuccessHandler(c, http.StatusOK, dto.HealthResponse{Status: "ok"})
		return
	}
	if err := r.health.Ping(c.Request.Context()); err != nil {
		r.logger.Errorf("health check failed: %v", err)
		SuccessHandler(c, http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	SuccessHandler(c, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
