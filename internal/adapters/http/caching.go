package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CachingMiddleware sets Cache-Control headers on GET responses based
// on endpoint, unless the handler already set one.
func CachingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() != "GET" {
			return err
		}
		if existing := c.GetRespHeader("Cache-Control"); existing != "" {
			return err
		}

		path := c.Path()
		var ttl string

		switch {
		case path == "/health" || path == "/ready":
			ttl = "public, max-age=10"

		case path == "/metrics":
			ttl = "no-cache"

		case strings.HasPrefix(path, "/api/translations"):
			ttl = "public, max-age=3600" // UI texts change rarely

		case strings.HasPrefix(path, "/api/wandersteine/nearby"):
			ttl = "public, max-age=300"

		case path == "/api/wandersteine" || path == "/api/wandersteine/recent":
			ttl = "public, max-age=300"

		case strings.HasPrefix(path, "/api/wandersteine/"):
			ttl = "public, max-age=600" // single stone

		case strings.HasPrefix(path, "/api/"):
			ttl = "public, max-age=300"
		}

		if ttl != "" {
			c.Set("Cache-Control", ttl)
		}

		return err
	}
}
