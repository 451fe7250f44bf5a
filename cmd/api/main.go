package main

import (
	"context"
	"log"

	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/internal/config"
	"github.com/agustiinveraa/inmoflow/internal/infrastructure/database"
	"github.com/agustiinveraa/inmoflow/internal/infrastructure/repository"
	"github.com/agustiinveraa/inmoflow/internal/infrastructure/storage"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/handler"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/routes"
	"github.com/agustiinveraa/inmoflow/pkg/oauth"
	"github.com/agustiinveraa/inmoflow/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	agencyRepo := repository.NewAgencyRepository(db)
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize object storage
	objectStore, err := storage.NewS3Storage(context.Background(), cfg.Storage.S3Bucket, cfg.Storage.S3Region)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	agencyService := service.NewAgencyService(agencyRepo, userRepo)
	clientService := service.NewClientService(clientRepo)
	propertyService := service.NewPropertyService(propertyRepo, clientRepo)
	visitService := service.NewVisitService(visitRepo, propertyRepo, clientRepo)
	mediaService := service.NewMediaService(objectStore, propertyService, cfg.Storage.UploadMaxSize, cfg.Storage.MaxImages)
	dashboardService := service.NewDashboardService(propertyRepo, clientRepo, visitRepo)

	// Initialize handlers
	handlers := routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Agency:    handler.NewAgencyHandler(agencyService),
		Client:    handler.NewClientHandler(clientService),
		Property:  handler.NewPropertyHandler(propertyService),
		Visit:     handler.NewVisitHandler(visitService),
		Media:     handler.NewMediaHandler(mediaService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, cfg, jwtManager, agencyService, idempotencyRepo, handlers)

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
