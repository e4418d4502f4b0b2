package main

import (
	"context"
	"log"
	"time"

	"github.com/rishindramani/awesome-referrals-sub000/auth"
	"github.com/rishindramani/awesome-referrals-sub000/config"
	"github.com/rishindramani/awesome-referrals-sub000/handlers"
	"github.com/rishindramani/awesome-referrals-sub000/middleware"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
	"github.com/rishindramani/awesome-referrals-sub000/service"
	"github.com/rishindramani/awesome-referrals-sub000/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	// Initialize storage
	resumeStorage, err := storage.New(storage.Config{
		Type:         storage.Type(cfg.StorageType),
		LocalPath:    cfg.StorageLocalPath,
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.S3Region,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Initialize repositories. The catalog is seeded once; everything
	// else starts empty and lives for the process lifetime.
	userRepo := repository.NewUserRepository()
	companyRepo := repository.NewCompanyRepository(repository.DefaultCompanies())
	jobRepo := repository.NewJobRepository(repository.DefaultJobs())
	savedJobRepo := repository.NewSavedJobRepository()
	referralRepo := repository.NewReferralRepository()
	conversationRepo := repository.NewConversationRepository()
	resumeRepo := repository.NewResumeRepository()

	if err := seedUsers(userRepo); err != nil {
		logger.Fatal("Failed to seed demo users", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	jobService := service.NewJobService(
		service.WithJobRepository(jobRepo),
		service.WithCompanyRepository(companyRepo),
		service.WithSavedJobRepository(savedJobRepo),
	)
	referralService := service.NewReferralService(
		service.WithReferralRepository(referralRepo),
		service.WithReferralJobRepository(jobRepo),
		service.WithReferralUserRepository(userRepo),
	)
	conversationService := service.NewConversationService(conversationRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	jobHandler := handlers.NewJobHandler(jobService, logger)
	companyHandler := handlers.NewCompanyHandler(companyRepo, jobService, logger)
	referralHandler := handlers.NewReferralHandler(referralService, logger)
	conversationHandler := handlers.NewConversationHandler(conversationService, logger)
	resumeHandler := handlers.NewResumeHandler(resumeRepo, resumeStorage, logger)

	authLimiter := middleware.NewLimiterStore(cfg.AuthRateLimit, cfg.AuthRateBurst, 5*time.Minute)
	requireAuth := middleware.RequireAuth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", middleware.RateLimit(authLimiter), authHandler.Register)
			authRoutes.POST("/login", middleware.RateLimit(authLimiter), authHandler.Login)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
			authRoutes.PUT("/me", requireAuth, authHandler.UpdateMe)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", optionalAuth, jobHandler.List)
			jobs.GET("/search", optionalAuth, jobHandler.Search)
			jobs.GET("/saved", requireAuth, jobHandler.ListSaved)
			jobs.GET("/:id", optionalAuth, jobHandler.Get)
			jobs.POST("/:id/save", requireAuth, jobHandler.Save)
			jobs.DELETE("/:id/save", requireAuth, jobHandler.Unsave)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.GET("/:id", companyHandler.Get)
			companies.GET("/:id/jobs", optionalAuth, companyHandler.Jobs)
		}

		referrals := api.Group("/referrals", requireAuth)
		{
			referrals.POST("", referralHandler.Create)
			referrals.GET("/requests", referralHandler.List)
			referrals.GET("/requests/:id", referralHandler.Get)
			referrals.DELETE("/requests/:id", referralHandler.Delete)
			referrals.PUT("/requests/:id/approve", referralHandler.Approve)
			referrals.PUT("/requests/:id/reject", referralHandler.Reject)
			referrals.PUT("/requests/:id/complete", referralHandler.Complete)
			referrals.PUT("/requests/:id/status", referralHandler.UpdateStatus)
			referrals.POST("/requests/:id/notes", referralHandler.AddNote)
		}

		conversations := api.Group("/conversations", requireAuth)
		{
			conversations.GET("", conversationHandler.List)
			conversations.POST("", conversationHandler.Start)
			conversations.GET("/:id/messages", conversationHandler.ListMessages)
			conversations.POST("/:id/messages", conversationHandler.PostMessage)
		}

		resumes := api.Group("/resumes", requireAuth)
		{
			resumes.POST("", resumeHandler.Upload)
			resumes.GET("/:id", resumeHandler.Download)
		}
	}

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// seedUsers registers the demo accounts. All of them share the demo
// password; mutable state is lost on restart, so these are recreated
// identically every boot.
func seedUsers(userRepo *repository.UserRepository) error {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}
	ctx := context.Background()
	for _, user := range repository.DefaultUsers() {
		user.PasswordHash = hash
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
	}
	return nil
}
