package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"

	"github.com/trailmarks-io/trailmarks/internal/pkg/metrics"
)

// SetupRoutes registers all REST routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Response compression (gzip)
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Request ID, propagated into slog context
	app.Use(requestid.New())
	app.Use(RequestIDLogMiddleware())

	// Access logs (structured HTTP request logging)
	app.Use(AccessLogMiddleware())

	// Rate limiting: 120 requests per minute per IP
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error":   "rate limit exceeded",
				"message": "too many requests, please try again later",
			})
		},
	}))

	// Security headers
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// ETag for conditional caching
	app.Use(ETagMiddleware())

	// Default Cache-Control headers
	app.Use(CachingMiddleware())

	// Health & readiness (no timeout — fast internal checks)
	app.Get("/health", HealthHandler(deps))
	app.Get("/ready", ReadyHandler(deps))

	// REST API — 15s per-request timeout. The fixed paths must be
	// registered before the :uniqueId catch-all.
	api := app.Group("/api")
	api.Get("/wandersteine/recent", timeout.NewWithContext(RecentWandersteineHandler(deps), 15*time.Second))
	api.Get("/wandersteine/nearby", timeout.NewWithContext(NearbyWandersteineHandler(deps), 15*time.Second))
	api.Get("/wandersteine", timeout.NewWithContext(AllWandersteineHandler(deps), 15*time.Second))
	api.Get("/wandersteine/:uniqueId", timeout.NewWithContext(WandersteinByIDHandler(deps), 15*time.Second))

	api.Get("/translations/languages", timeout.NewWithContext(LanguagesHandler(deps), 15*time.Second))
	api.Get("/translations/:language", timeout.NewWithContext(TranslationsHandler(deps), 15*time.Second))
}
