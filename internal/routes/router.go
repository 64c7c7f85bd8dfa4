package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wastetrack/internal/config"
	"wastetrack/internal/delivery/http/handler"
	"wastetrack/internal/infrastructure/database/postgres"
	"wastetrack/internal/logger"
	"wastetrack/internal/mailer"
	"wastetrack/internal/middleware"
	"wastetrack/internal/notifier"
	"wastetrack/internal/usecase/declaration"
	"wastetrack/internal/usecase/feedback"
	"wastetrack/internal/usecase/notification"
	"wastetrack/internal/usecase/pickup"
	"wastetrack/internal/usecase/rewards"
	"wastetrack/internal/usecase/tracking"
	"wastetrack/internal/usecase/user"
	"wastetrack/internal/usecase/waste"
)

// Services holds the wired use case layer so main can start the
// background jobs after the router is built.
type Services struct {
	User         *user.Service
	Pickup       *pickup.Service
	Waste        *waste.Service
	Declaration  *declaration.Service
	Tracking     *tracking.Service
	Feedback     *feedback.Service
	Notification *notification.Service
	Rewards      *rewards.Service
}

func SetupRoutes(cfg *config.Config, db *postgres.DB) (*gin.Engine, *Services) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: recovery, request ID, logging, security
	// headers, CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db, cfg.Rewards.PointsPerLevel)
	refreshTokenRepository := postgres.NewRefreshTokenRepository(db)
	pickupRepository := postgres.NewPickupRepository(db)
	wasteRepository := postgres.NewWasteRepository(db)
	declarationRepository := postgres.NewDeclarationRepository(db)
	trackingRepository := postgres.NewTrackingRepository(db)
	feedbackRepository := postgres.NewFeedbackRepository(db)
	notificationRepository := postgres.NewNotificationRepository(db)

	notify := notifier.New(notificationRepository)
	mail := mailer.New(cfg.SMTP)

	userService := user.NewService(userRepository, refreshTokenRepository, mail, cfg)
	trackingService := tracking.NewService(trackingRepository, userRepository)
	pickupService := pickup.NewService(pickupRepository, userRepository, trackingService, notify, cfg)
	wasteService := waste.NewService(wasteRepository)
	declarationService := declaration.NewService(declarationRepository, userRepository)
	feedbackService := feedback.NewService(feedbackRepository, notify)
	notificationService := notification.NewService(notificationRepository)
	rewardsService := rewards.NewService(userRepository, pickupRepository, notify, cfg)

	// Completed pickups feed badge evaluation.
	pickupService.SetBadgeAwarder(rewardsService)

	userHandler := handler.NewUserHandler(userService)
	pickupHandler := handler.NewPickupHandler(pickupService)
	wasteHandler := handler.NewWasteHandler(wasteService)
	declarationHandler := handler.NewDeclarationHandler(declarationService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	rewardsHandler := handler.NewRewardsHandler(rewardsService)

	v1 := router.Group("/api/v1")
	{
		// Public routes: auth, shipment and declaration tracking,
		// the segregation guide.
		userHandler.RegisterPublicRoutes(v1)
		trackingHandler.RegisterPublicRoutes(v1)
		declarationHandler.RegisterPublicRoutes(v1)
		wasteHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterAuthRoutes(protected)
			feedbackHandler.RegisterAuthRoutes(protected)
			notificationHandler.RegisterAuthRoutes(protected)
			rewardsHandler.RegisterAuthRoutes(protected)

			citizen := protected.Group("")
			citizen.Use(middleware.CitizenOnly())
			{
				wasteHandler.RegisterCitizenRoutes(citizen)
			}

			// Industries schedule pickups too, so pickup routes sit
			// behind citizen and industry roles.
			pickups := protected.Group("")
			pickups.Use(middleware.RoleMiddleware("citizen", "industry"))
			{
				pickupHandler.RegisterCitizenRoutes(pickups)
			}

			industry := protected.Group("")
			industry.Use(middleware.IndustryOnly())
			{
				declarationHandler.RegisterIndustryRoutes(industry)
				trackingHandler.RegisterIndustryRoutes(industry)
			}

			collector := protected.Group("")
			collector.Use(middleware.CollectorOnly())
			{
				pickupHandler.RegisterCollectorRoutes(collector)
				trackingHandler.RegisterCollectorRoutes(collector)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				declarationHandler.RegisterAdminRoutes(admin)
				trackingHandler.RegisterAdminRoutes(admin)
				feedbackHandler.RegisterAdminRoutes(admin)
				rewardsHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")

	services := &Services{
		User:         userService,
		Pickup:       pickupService,
		Waste:        wasteService,
		Declaration:  declarationService,
		Tracking:     trackingService,
		Feedback:     feedbackService,
		Notification: notificationService,
		Rewards:      rewardsService,
	}

	return router, services
}
