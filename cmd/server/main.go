package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rtu-canteen/canteen-api/internal/config"
	"github.com/rtu-canteen/canteen-api/internal/handlers"
	"github.com/rtu-canteen/canteen-api/internal/menu"
	"github.com/rtu-canteen/canteen-api/internal/middleware"
	"github.com/rtu-canteen/canteen-api/internal/notification"
	"github.com/rtu-canteen/canteen-api/internal/repository"
	"github.com/rtu-canteen/canteen-api/internal/service"
	"github.com/rtu-canteen/canteen-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting canteen api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize order storage: Postgres when configured, otherwise
	// the in-memory store.
	var orderRepo repository.OrderRepository
	var storagePinger handlers.StoragePinger

	if cfg.Database.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pgRepo, err := repository.NewPostgresOrderRepository(ctx, cfg.Database.URL)
		cancel()
		if err != nil {
			log.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer pgRepo.Close()

		orderRepo = pgRepo
		storagePinger = pgRepo
		log.Info("order storage initialized", "backend", "postgres")
	} else {
		orderRepo = repository.NewInMemoryOrderRepository()
		log.Warn("DATABASE_URL not set, orders will not survive restarts")
	}

	// Initialize the SMS gateway client; with incomplete credentials
	// the notification service degrades to preview-only mode.
	smsConfig := notification.SMSConfig{
		APIURL:     cfg.SMS.APIURL,
		SenderID:   cfg.SMS.SenderID,
		AccountID:  cfg.SMS.AccountID,
		AuthToken:  cfg.SMS.AuthToken,
		AdminPhone: cfg.SMS.AdminPhone,
	}
	var smsSender service.SMSSender
	if smsConfig.Complete() {
		smsSender = notification.NewSMSClient(smsConfig)
		log.Info("sms gateway configured", "sender_id", smsConfig.SenderID)
	} else {
		log.Warn("sms credentials incomplete, summaries will be preview-only")
	}

	// Initialize services
	menuService := service.NewMenuService(menu.Items())
	orderService := service.NewOrderService(menuService.Items(), orderRepo)
	notificationService := service.NewNotificationService(orderRepo, smsSender, smsConfig)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(storagePinger, log)
	menuHandler := handlers.NewMenuHandler(menuService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	notificationHandler := handlers.NewNotificationHandler(notificationService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Service status endpoints
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menuHandler.GetMenu)

		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders", orderHandler.ListOrders)

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Post("/notifications/summary", notificationHandler.SendSummary)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
