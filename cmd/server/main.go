package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aeronest.backend/internal/config"
	"aeronest.backend/internal/infrastructure/repositories"
	"aeronest.backend/internal/infrastructure/security"
	"aeronest.backend/internal/interfaces/http/handlers"
	"aeronest.backend/internal/interfaces/http/middleware"
	"aeronest.backend/internal/usecases"
	"aeronest.backend/pkg/jwt"
	"aeronest.backend/pkg/logger"
	"aeronest.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	// Login throttle backend: Redis survives restarts and is shared
	// across replicas; memory is the single-node fallback.
	throttlePolicy := security.ThrottlePolicy{
		MaxAttempts:   cfg.Security.ThrottleMaxAttempts,
		Window:        cfg.Security.ThrottleWindow,
		BlockDuration: cfg.Security.ThrottleBlockDuration,
	}
	var throttle, apiLimiter, adminLimiter security.ThrottleStore
	if cfg.Redis.Enabled {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		logger.Info(context.Background(), "Redis initialized")
		throttle = security.NewRedisThrottleStore(throttlePolicy)
		apiLimiter = security.NewRedisThrottleStore(security.APIRatePolicy())
		adminLimiter = security.NewRedisThrottleStore(security.AdminRatePolicy())
	} else {
		memStore := security.NewMemoryThrottleStore(throttlePolicy)
		defer memStore.Close()
		throttle = memStore

		memAPI := security.NewMemoryThrottleStore(security.APIRatePolicy())
		defer memAPI.Close()
		apiLimiter = memAPI

		memAdmin := security.NewMemoryThrottleStore(security.AdminRatePolicy())
		defer memAdmin.Close()
		adminLimiter = memAdmin
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	referralRepo := repositories.NewReferralRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, referralRepo, uow, jwtService, throttle)
	walletUsecase := usecases.NewWalletUsecase(walletRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, addressRepo, walletRepo, uow)
	addressUsecase := usecases.NewAddressUsecase(addressRepo, orderRepo)
	catalogUsecase := usecases.NewCatalogUsecase(catalogRepo)
	adminUsecase := usecases.NewAdminUsecase(orderRepo, userRepo, referralRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(walletUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	addressHandler := handlers.NewAddressHandler(addressUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		userHandler:    userHandler,
		orderHandler:   orderHandler,
		addressHandler: addressHandler,
		catalogHandler: catalogHandler,
		adminHandler:   adminHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
		rateLimit:      middleware.RateLimit(apiLimiter, "api"),
		adminRateLimit: middleware.RateLimit(adminLimiter, "admin"),
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
