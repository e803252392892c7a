package app

import (
	"context"
	"fmt"

	"linkbio_backend/database"
	"linkbio_backend/internal/config"
	"linkbio_backend/internal/handlers"
	"linkbio_backend/internal/logger"
	"linkbio_backend/internal/middleware"
	"linkbio_backend/internal/models"
	"linkbio_backend/internal/repositories"
	"linkbio_backend/internal/routes"
	"linkbio_backend/internal/services"
	"linkbio_backend/internal/validator"
	"linkbio_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedDefaultPlans(gormDB); err != nil {
		logger.Fatal("Failed to seed default plans", "error", err)
	}

	worker := workers.NewSubscriptionWorker(gormDB)
	worker.Start(context.Background())

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	linkRepo := repositories.NewLinkRepository(gormDB)
	analyticsRepo := repositories.NewAnalyticsRepository(gormDB)
	subscriptionRepo := repositories.NewSubscriptionRepository(gormDB)
	themeRepo := repositories.NewThemeRepository(gormDB)

	razorpayService := services.NewRazorpayService(cfg)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(userRepo, linkRepo, themeRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, linkRepo, razorpayService)
	linkService := services.NewLinkService(linkRepo, subscriptionService)
	analyticsService := services.NewAnalyticsService(analyticsRepo, linkRepo, subscriptionService)
	themeService := services.NewThemeService(themeRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		ProfileService:      profileService,
		LinkService:         linkService,
		AnalyticsService:    analyticsService,
		SubscriptionService: subscriptionService,
		ThemeService:        themeService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService, services.ProfileService),
		LinkHandler:         handlers.NewLinkHandler(baseHandler, services.LinkService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, services.AnalyticsService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, services.SubscriptionService),
		ThemeHandler:        handlers.NewThemeHandler(baseHandler, services.ThemeService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedDefaultPlans inserts the plan catalog on first boot. An existing
// catalog is left alone so price edits in the DB survive restarts.
func seedDefaultPlans(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Plan{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			logger.Info("Plan catalog already seeded. Skipping.", "plans", count)
			return nil
		}

		logger.Info("Seeding default plan catalog...")

		plans := []models.Plan{
			{
				Name:             "Free",
				Slug:             "free",
				PriceMonthly:     0,
				PriceYearly:      0,
				LinkLimit:        5,
				AnalyticsEnabled: false,
				Features: []models.PlanFeature{
					{Label: "Up to 5 links", Position: 0},
					{Label: "All theme presets", Position: 1},
				},
			},
			{
				Name:             "Starter",
				Slug:             "starter",
				PriceMonthly:     9900,
				PriceYearly:      99900,
				LinkLimit:        25,
				AnalyticsEnabled: false,
				Features: []models.PlanFeature{
					{Label: "Up to 25 links", Position: 0},
					{Label: "Custom themes", Position: 1},
				},
			},
			{
				Name:             "Pro",
				Slug:             "pro",
				PriceMonthly:     29900,
				PriceYearly:      299900,
				LinkLimit:        models.UnlimitedLinks,
				AnalyticsEnabled: true,
				Features: []models.PlanFeature{
					{Label: "Unlimited links", Position: 0},
					{Label: "Click analytics", Position: 1},
					{Label: "Custom themes", Position: 2},
				},
			},
		}

		for i := range plans {
			if err := tx.Create(&plans[i]).Error; err != nil {
				return fmt.Errorf("failed to seed plan %q: %w", plans[i].Slug, err)
			}
		}

		logger.Info("Default plan catalog seeded", "plans", len(plans))
		return nil
	})
}
