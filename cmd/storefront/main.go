package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storepro/storefront/internal/api/handlers"
	"github.com/storepro/storefront/internal/api/middleware"
	"github.com/storepro/storefront/internal/cache"
	"github.com/storepro/storefront/internal/config"
	"github.com/storepro/storefront/internal/health"
	"github.com/storepro/storefront/internal/metrics"
	repository "github.com/storepro/storefront/internal/repositories"
	service "github.com/storepro/storefront/internal/services"
	"github.com/storepro/storefront/internal/telemetry"
	"github.com/storepro/storefront/pkg/fakestore"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing
	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		slog.Error("Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer func() {
		if err := catalogCache.Close(); err != nil {
			slog.Error("Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	catalogClient := fakestore.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)

	catalogService := service.NewCatalogService(catalogClient, catalogCache)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(ctx, repos.Snapshots)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	authService := service.NewAuthService(ctx, catalogClient, repos.Snapshots)
	authHandler := handlers.NewAuthHandler(authService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout())
	routerMux.HandleFunc("DELETE /api/v1/auth/error", authHandler.ClearError())
	routerMux.HandleFunc("GET /api/v1/auth/session", authHandler.Session())
	routerMux.Handle("GET /healthz", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
