package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
	handlerHttp "github.com/PaulBilal/Edunova-School-System/internal/handler/http"
	redisclient "github.com/PaulBilal/Edunova-School-System/internal/infrastructure/cache"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/config"
	database "github.com/PaulBilal/Edunova-School-System/internal/infrastructure/database"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/external_services"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/jwt"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/logger"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/metrics"
	passwordservice "github.com/PaulBilal/Edunova-School-System/internal/infrastructure/password_service"
	randomgenerator "github.com/PaulBilal/Edunova-School-System/internal/infrastructure/random_generator"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/repository/mongodb"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/store"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/uuidgen"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/validator"
	"github.com/PaulBilal/Edunova-School-System/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// Establish MongoDB connection
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := database.NewMongoDBClient(connectCtx, cfg.MongoURI)
	cancel()
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	appLogger.Infof("MongoDB connected, database %s", cfg.MongoDBName)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager, err := jwt.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		appLogger.Fatalf("Failed to create token service: %v", err)
	}
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	randomGenerator := randomgenerator.NewRandomGenerator()
	deliverer := external_services.NewLogCodeDeliverer(appLogger.Zap().Named("verification"))
	appMetrics := metrics.New("edunova")

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(mongoClient.Database(cfg.MongoDBName).Collection("users"), hasher)
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Fatalf("Failed to prepare user collection: %v", err)
	}
	cancel()

	// Verification codes live in Redis when configured
	var codes contract.IVerificationCodeIssuer = store.NewStaticCodeIssuer(cfg.VerificationCode)
	if cfg.RedisURL != "" {
		redisCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := redisclient.NewRedisFromURL(redisCtx, cfg.RedisURL)
		cancel()
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		codes = store.NewRedisCodeStore(rdb, randomGenerator, cfg.VerificationCodeTTL)
		appLogger.Infof("Verification codes stored in Redis with TTL %s", cfg.VerificationCodeTTL)
	} else {
		appLogger.Warnf("REDIS_URL not set, using the fixed verification code")
	}

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, jwtManager, codes, deliverer, appValidator, appLogger)
	emailUsecase := usecase.NewEmailVerificationUseCase(userRepo, jwtManager, codes, deliverer, appLogger)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter := handlerHttp.NewRouter(authUsecase, emailUsecase, mongoClient, appMetrics, uuidGenerator, appLogger,
		handlerHttp.RouterOptions{
			AllowedOrigins:     cfg.AllowedOrigins,
			RateLimitPerSecond: cfg.RateLimitPerSecond,
		})
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
