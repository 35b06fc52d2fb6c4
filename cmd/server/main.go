package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yookve/api/internal/config"
	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/handler"
	"github.com/yookve/api/internal/jobs"
	"github.com/yookve/api/internal/metrics"
	"github.com/yookve/api/internal/middleware"
	"github.com/yookve/api/internal/repository"
	"github.com/yookve/api/internal/service"
	"github.com/yookve/api/internal/travelapi"
	"github.com/yookve/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize metrics collector
	collector := metrics.NewCollector()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewTravelPackageRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	savedRepo := repository.NewSavedPackageRepository(db)

	// Ensure schema and seed the demo catalog
	seeder := service.NewSeederService(db, packageRepo)
	if err := seeder.EnsureSchema(ctx); err != nil {
		slog.Error("failed to ensure schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := seeder.SeedTravelPackages(ctx); err != nil {
		slog.Error("failed to seed travel packages", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize external travel API client (optional)
	travelClient := travelapi.NewClient(travelapi.Config{
		BaseURL:  cfg.TravelAPI.BaseURL,
		Username: cfg.TravelAPI.Username,
		Password: cfg.TravelAPI.Password,
		TokenTTL: cfg.TravelAPI.TokenTTL.Std(),
		Timeout:  cfg.TravelAPI.Timeout.Std(),
	}, collector)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	catalogService := service.NewCatalogService(packageRepo)
	preferenceService := service.NewPreferenceService(preferenceRepo)
	recommendationService := service.NewRecommendationService(preferenceRepo, packageRepo, travelClient)
	bookingService := service.NewBookingService(bookingRepo, packageRepo, collector)
	paymentService := service.NewPaymentService(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, bookingService)
	savedService := service.NewSavedPackageService(savedRepo, packageRepo)

	if !travelClient.Enabled() {
		slog.Info("external travel API not configured, recommendations use local matching")
	}
	if !paymentService.Enabled() {
		slog.Info("Stripe not configured, payment endpoints disabled")
	}

	// Start the stale-booking sweeper
	sweeper := jobs.NewBookingSweeper(bookingRepo, cfg.Jobs.SweepInterval.Std(), cfg.Jobs.PendingMaxAge.Std())
	sweeper.Start()
	defer sweeper.Stop()

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	packageHandler := handler.NewPackageHandler(catalogService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	bookingHandler := handler.NewBookingHandler(bookingService, paymentService)
	savedHandler := handler.NewSavedPackageHandler(savedService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("GET /api/ping", healthHandler.Ping)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(authService)
	mux.Handle("GET /api/auth/user", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Catalog endpoints (public)
	mux.HandleFunc("GET /api/travel-packages", packageHandler.List)
	mux.HandleFunc("GET /api/travel-packages/search", packageHandler.Search)
	mux.HandleFunc("GET /api/travel-packages/category/{category}", packageHandler.ByCategory)
	mux.HandleFunc("GET /api/travel-packages/{id}", packageHandler.Get)
	mux.Handle("POST /api/travel-packages", authMiddleware(http.HandlerFunc(packageHandler.Create)))

	// Preference endpoints
	mux.Handle("POST /api/preferences", authMiddleware(http.HandlerFunc(preferenceHandler.Save)))
	mux.Handle("GET /api/preferences", authMiddleware(http.HandlerFunc(preferenceHandler.GetActive)))
	mux.Handle("GET /api/preferences/all", authMiddleware(http.HandlerFunc(preferenceHandler.List)))

	// Recommendation endpoints
	mux.Handle("GET /api/recommendations", authMiddleware(http.HandlerFunc(recommendationHandler.Get)))

	// Booking endpoints
	mux.Handle("POST /api/bookings", authMiddleware(http.HandlerFunc(bookingHandler.Create)))
	mux.Handle("GET /api/bookings", authMiddleware(http.HandlerFunc(bookingHandler.List)))
	mux.Handle("GET /api/bookings/{id}", authMiddleware(http.HandlerFunc(bookingHandler.Get)))
	mux.Handle("PATCH /api/bookings/{id}/status", authMiddleware(http.HandlerFunc(bookingHandler.UpdateStatus)))
	mux.Handle("POST /api/bookings/create-payment-intent", authMiddleware(http.HandlerFunc(bookingHandler.CreatePaymentIntent)))

	// Stripe webhook (authenticated by signature, not session)
	mux.HandleFunc("POST /api/bookings/webhook", bookingHandler.Webhook)

	// Prometheus metrics
	mux.Handle("GET /metrics", collector.Handler())

	// Saved package endpoints. The client calls the list both at the
	// collection root and as "my-packages".
	mux.Handle("POST /api/saved-packages", authMiddleware(http.HandlerFunc(savedHandler.Save)))
	mux.Handle("GET /api/saved-packages", authMiddleware(http.HandlerFunc(savedHandler.List)))
	mux.Handle("GET /api/saved-packages/my-packages", authMiddleware(http.HandlerFunc(savedHandler.List)))
	mux.Handle("GET /api/saved-packages/itinerary", authMiddleware(http.HandlerFunc(recommendationHandler.Itinerary)))
	mux.Handle("DELETE /api/saved-packages/{id}", authMiddleware(http.HandlerFunc(savedHandler.Delete)))

	// Static web client with SPA fallback
	mux.Handle("/", handler.NewStaticHandler(cfg.Server.StaticDir))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		collector.Middleware(),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
