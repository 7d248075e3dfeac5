package main

import (
	"context"
	"log"
	"time"

	"globex-logistics/internal/core/cache"
	"globex-logistics/internal/core/config"
	"globex-logistics/internal/core/database"
	"globex-logistics/internal/core/logger"
	"globex-logistics/internal/core/server"
	authhandler "globex-logistics/internal/features/auth/handler"
	authservice "globex-logistics/internal/features/auth/service"
	quoteadapter "globex-logistics/internal/features/quotes/adapters"
	quotedomain "globex-logistics/internal/features/quotes/domain"
	quotehandler "globex-logistics/internal/features/quotes/handler"
	quoteservice "globex-logistics/internal/features/quotes/service"
	shipmentadapter "globex-logistics/internal/features/shipments/adapters"
	shipmentdomain "globex-logistics/internal/features/shipments/domain"
	shipmenthandler "globex-logistics/internal/features/shipments/handler"
	shipmentservice "globex-logistics/internal/features/shipments/service"

	"go.uber.org/zap"
)

// @title Globex Logistics API
// @version 1.0
// @description Shipment tracking lookup and admin panel API for the Globex Logistics site.
// @contact.name API Support
// @contact.email support@globexlogistics.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		l.Fatal("Postgres connection failed", zap.Error(err))
	}
	if err := database.Migrate(db,
		&shipmentdomain.Shipment{},
		&shipmentdomain.ShipmentEvent{},
		&quotedomain.QuoteRequest{},
	); err != nil {
		l.Fatal("Database migration failed", zap.Error(err))
	}

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Redis setup failed", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis ping failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	imageStore, err := shipmentadapter.NewMinioImageStore(cfg.Storage)
	if err != nil {
		l.Fatal("Object storage setup failed", zap.Error(err))
	}
	if err := imageStore.EnsureBucket(pingCtx); err != nil {
		l.Fatal("Object storage bucket check failed", zap.Error(err))
	}

	// Repositories
	shipmentRepo := shipmentadapter.NewGormShipmentRepository(db)
	eventRepo := shipmentadapter.NewGormEventRepository(db)
	quoteRepo := quoteadapter.NewGormQuoteRepository(db)

	// Services
	trackingSvc := shipmentservice.NewTrackingService(shipmentRepo, eventRepo, redisCache)
	adminSvc := shipmentservice.NewAdminService(shipmentRepo, eventRepo, imageStore, redisCache)
	quoteSvc := quoteservice.NewQuoteService(quoteRepo)
	sessionSvc := authservice.NewSessionService(
		cfg.Admin.Password,
		time.Duration(cfg.Admin.SessionTTLMinutes)*time.Minute,
		redisCache,
	)

	// Handlers
	trackingHdl := shipmenthandler.NewTrackingHandler(trackingSvc)
	adminHdl := shipmenthandler.NewAdminHandler(adminSvc)
	quoteHdl := quotehandler.NewQuoteHandler(quoteSvc)
	authHdl := authhandler.NewAuthHandler(sessionSvc)

	srv := server.New(cfg)

	// Public routes
	srv.App.Get("/tracking/:number", trackingHdl.GetTracking)
	srv.App.Post("/quotes", quoteHdl.SubmitQuote)
	srv.App.Post("/admin/login", authHdl.Login)
	srv.App.Post("/admin/logout", authHdl.Logout)

	// Admin routes behind the session guard
	admin := srv.App.Group("/admin", authhandler.RequireSession(sessionSvc))
	admin.Get("/shipments", adminHdl.ListShipments)
	admin.Get("/shipments/stats", adminHdl.GetStats)
	admin.Post("/shipments", adminHdl.CreateShipment)
	admin.Get("/shipments/:id", adminHdl.GetShipment)
	admin.Put("/shipments/:id", adminHdl.UpdateShipment)
	admin.Delete("/shipments/:id", adminHdl.DeleteShipment)
	admin.Post("/shipments/:id/images", adminHdl.UploadImages)
	admin.Delete("/shipments/:id/images", adminHdl.RemoveImage)
	admin.Get("/quotes", quoteHdl.ListQuotes)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
