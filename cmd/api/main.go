package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"villagemart/internal/config"
	"villagemart/internal/database"
	"villagemart/internal/domain/admin"
	"villagemart/internal/domain/analytics"
	"villagemart/internal/domain/customer"
	"villagemart/internal/domain/notification"
	"villagemart/internal/domain/product"
	"villagemart/internal/domain/shopkeeper"
	"villagemart/internal/mail"
	"villagemart/internal/middleware"
	jwtsvc "villagemart/internal/pkg/jwt"
	"villagemart/internal/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, os.Getenv("LOG_JSON") == "true", os.Stderr)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	customerRepo := customer.NewRepository(db)
	shopkeeperRepo := shopkeeper.NewRepository(db)
	adminRepo := admin.NewRepository(db)
	productRepo := product.NewRepository(db)
	notificationRepo := notification.NewNotificationRepository(db)
	subscriptionRepo := notification.NewSubscriptionRepository(db)
	analyticsRepo := analytics.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	mailer := mail.New(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	}, logger.Log)

	hub := notification.NewHub()

	fanout := notification.NewFanout(
		subscriptionRepo,
		notificationRepo,
		customerRepo,
		mailer,
		hub,
		cfg.FrontendBaseURL,
		logger.Log,
	)

	notificationService := notification.NewService(notificationRepo, subscriptionRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	customerService := customer.NewService(customerRepo, j)
	customerHandler := customer.NewHandler(customerService)

	shopkeeperService := shopkeeper.NewService(shopkeeperRepo, j)
	shopkeeperHandler := shopkeeper.NewHandler(shopkeeperService)

	adminService := admin.NewService(adminRepo, j, notificationService)
	adminHandler := admin.NewHandler(adminService)

	analyticsService := analytics.NewService(analyticsRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	productService := product.NewService(productRepo, shopkeeperRepo, fanout, analyticsRepo, logger.Log)
	productHandler := product.NewHandler(productService, cfg.UploadDir)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.CORS(cfg.CORSOrigins))

	r.Static("/uploads", cfg.UploadDir)

	auth := middleware.Auth(j)

	v1 := r.Group("/api/v1")
	{
		customerHandler.RegisterRoutes(v1, auth)
		shopkeeperHandler.RegisterRoutes(v1, auth)
		adminHandler.RegisterRoutes(v1, auth)
		productHandler.RegisterRoutes(v1, auth)
		notificationHandler.RegisterRoutes(v1, auth)
		analyticsHandler.RegisterRoutes(v1, auth)
	}

	logger.Log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
