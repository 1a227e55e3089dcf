package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roomly/roomly-backend/internal/http/handlers"
	httpmw "github.com/roomly/roomly-backend/internal/http/middleware"
	"github.com/roomly/roomly-backend/internal/platform/mailer"
	"github.com/roomly/roomly-backend/internal/repository"
	"github.com/roomly/roomly-backend/internal/service"
	"github.com/roomly/roomly-backend/pkg/config"
	"github.com/roomly/roomly-backend/pkg/database"
	"github.com/roomly/roomly-backend/pkg/events"
	"github.com/roomly/roomly-backend/pkg/logger"
	mw "github.com/roomly/roomly-backend/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using process environment")
	}

	cfg := config.Load()

	// Connect to database
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}

	// Event publisher (noop unless NATS is configured)
	var bus events.Publisher
	if cfg.NATS.URL != "" {
		bus, err = events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
	} else {
		bus = events.NewNoopPublisher()
	}
	defer bus.Close()

	// Mailer
	var mail mailer.Service
	switch {
	case cfg.Email.DevMode:
		mail = mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		mail = mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	default:
		mail = mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	rateLimitRepo := repository.NewRateLimitRepository(pool)

	// Initialize services
	authService := service.NewAuthService(userRepo, mail, bus, cfg)
	roomService := service.NewRoomService(roomRepo, bus)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, userRepo, mail, bus)

	// Initialize handlers
	h := handlers.New(authService, roomService, bookingService, cfg)

	authLimiter := httpmw.NewRateLimiter(rateLimitRepo, httpmw.RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
		KeyFunc:  httpmw.ByClientIP,
	})

	// Setup router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(mw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(h.WithUser)

	r.Handle("/metrics", promhttp.Handler())
	h.Routes(r, authLimiter.Middleware())

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down API server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("API server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting API server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("API server error", "error", err)
		os.Exit(1)
	}
}
