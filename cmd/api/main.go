package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/trailmarks-io/trailmarks/internal/adapters/http"
	"github.com/trailmarks-io/trailmarks/internal/adapters/memory"
	"github.com/trailmarks-io/trailmarks/internal/adapters/postgres"
	"github.com/trailmarks-io/trailmarks/internal/adapters/valkey"
	"github.com/trailmarks-io/trailmarks/internal/core/ports"
	"github.com/trailmarks-io/trailmarks/internal/core/usecases"
	"github.com/trailmarks-io/trailmarks/internal/pkg/config"
	"github.com/trailmarks-io/trailmarks/internal/pkg/logging"
	"github.com/trailmarks-io/trailmarks/internal/pkg/metrics"
	"github.com/trailmarks-io/trailmarks/internal/pkg/telemetry"
	"github.com/trailmarks-io/trailmarks/internal/seed"
)

func main() {
	cfg, err := config.Load("trailmarks-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Storage: PostGIS-backed by default, in-process Haversine filtering
	// over the bundled fixtures with the memory driver.
	var (
		stoneRepo       ports.WandersteinRepository
		translationRepo ports.TranslationRepository
		db              *postgres.DB
	)
	switch cfg.Storage.Driver {
	case "memory":
		memStones := memory.NewWandersteinRepo()
		memTranslations := memory.NewTranslationRepo()
		if err := seed.Apply(ctx, memStones, memTranslations); err != nil {
			log.Fatalf("seed memory storage: %v", err)
		}
		stoneRepo, translationRepo = memStones, memTranslations
		slog.Info("using in-memory storage", "stones", len(seed.Stones()))
	default:
		db, err = postgres.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		stoneRepo = postgres.NewWandersteinRepo(db)
		translationRepo = postgres.NewTranslationRepo(db)

		go reportPoolStats(ctx, db)
	}

	// Cache
	var cache *valkey.Cache
	if cfg.Valkey.Enabled {
		cache, err = valkey.New(cfg.Valkey.Addr)
		if err != nil {
			slog.Warn("valkey unavailable", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	// Use cases
	stoneSvc := usecases.NewWandersteinService(stoneRepo, cacheOrNil(cache))
	translationSvc := usecases.NewTranslationService(translationRepo)

	deps := &http.Dependencies{
		Stones:       stoneSvc,
		Translations: translationSvc,
		DB:           db,
		Cache:        cache,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024,
		AppName:      "Trailmarks API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:4200, http://localhost:5173, https://*.trailmarks.io",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr, "storage", cfg.Storage.Driver)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

// cacheOrNil avoids handing a typed-nil *valkey.Cache to the service
// behind the CacheService interface.
func cacheOrNil(cache *valkey.Cache) ports.CacheService {
	if cache == nil {
		return nil
	}
	return cache
}

// reportPoolStats feeds the Prometheus pool gauges every 15 seconds.
func reportPoolStats(ctx context.Context, db *postgres.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateDBPoolMetrics(db.Pool.Stat())
		}
	}
}
