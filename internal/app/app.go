package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	geodropHTTP "geodrop/internal/controller/http"
	"geodrop/internal/entity"
	"geodrop/internal/jobs"
	"geodrop/internal/repo/persistent"
	"geodrop/internal/usecase"
	"geodrop/pkg/config"
	"geodrop/pkg/jwt"
	"geodrop/pkg/logger"
	"geodrop/pkg/middleware"
	"geodrop/pkg/queue"
	"geodrop/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	locationRepo := persistent.NewLocationRepository(db)
	voteRepo := persistent.NewVoteRepository(db)
	badgeRepo := persistent.NewBadgeRepository(db)
	walletRepo := persistent.NewWalletRepository(db)

	thresholds := entity.Thresholds{
		Flag:   cfg.FlagThreshold,
		Verify: cfg.VerifyThreshold,
	}

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	locationUseCase := usecase.NewLocationUseCase(locationRepo, voteRepo, s3Client, log)
	voteUseCase := usecase.NewVoteUseCase(voteRepo, walletRepo, redisClient, queueClient, thresholds, cfg.VerifiedBonus, log)
	badgeUseCase := usecase.NewBadgeUseCase(badgeRepo, queueClient, log)
	walletUseCase := usecase.NewWalletUseCase(walletRepo, log)
	adminUseCase := usecase.NewAdminUseCase(locationRepo, userRepo, log)

	// Initialize HTTP handlers
	authHandler := geodropHTTP.NewAuthHandler(authUseCase, log)
	locationHandler := geodropHTTP.NewLocationHandler(locationUseCase, log)
	voteHandler := geodropHTTP.NewVoteHandler(voteUseCase, badgeUseCase, log)
	badgeHandler := geodropHTTP.NewBadgeHandler(badgeUseCase, log)
	walletHandler := geodropHTTP.NewWalletHandler(walletUseCase, log)
	adminHandler := geodropHTTP.NewAdminHandler(adminUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth endpoints
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/auth/me", authHandler.Me)

		api.POST("/locations", locationHandler.CreateLocation)
		api.GET("/locations", locationHandler.ListLocations)
		api.GET("/locations/:id", locationHandler.GetLocation)
		api.PUT("/locations/:id", locationHandler.UpdateLocation)
		api.DELETE("/locations/:id", locationHandler.DeleteLocation)
		api.GET("/locations/creator/:creator_id", locationHandler.GetCreatorLocations)

		api.POST("/locations/:id/vote", voteHandler.CastVote)
		api.GET("/locations/:id/vote", voteHandler.GetOwnVote)

		api.GET("/badges", badgeHandler.GetBadges)
		api.POST("/badges/evaluate", badgeHandler.Evaluate)

		api.GET("/wallet/balance", walletHandler.GetBalance)
		api.POST("/wallet/topup", walletHandler.TopUp)
		api.GET("/wallet/transactions", walletHandler.GetTransactions)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/locations/search", adminHandler.SearchLocations)
		admin.PUT("/locations/:id/status", adminHandler.OverrideStatus)
		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id/active", adminHandler.SetUserActive)
	}

	// Start background sweeper for auto-delete locations
	sweeper := jobs.NewSweeper(locationRepo, cfg.SweepIntervalMinutes, log)
	if err := sweeper.Start(); err != nil {
		log.Error("Failed to start sweeper: %v", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Geodrop API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sweeper.Stop()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Geodrop API exited")
}
