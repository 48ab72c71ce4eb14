package http

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
	"github.com/trailmarks-io/trailmarks/internal/core/usecases"
	"github.com/trailmarks-io/trailmarks/internal/pkg/metrics"
)

// queryFloat returns the named query parameter as a float, or nil when
// it is absent. A present but malformed value is an error; silently
// dropping it would change which default center/radius applies.
func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &v, nil
}

// RecentWandersteineHandler returns the 5 most recently added stones.
func RecentWandersteineHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stones, err := deps.Stones.Recent(c.UserContext())
		if err != nil {
			LoggerFromCtx(c.UserContext()).Error("fetch recent wandersteine", "error", err)
			return errInternal(c, "An error occurred while fetching recent Wandersteine")
		}
		return c.JSON(toListItems(stones))
	}
}

// AllWandersteineHandler returns every stone, newest first.
func AllWandersteineHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stones, err := deps.Stones.All(c.UserContext())
		if err != nil {
			LoggerFromCtx(c.UserContext()).Error("fetch all wandersteine", "error", err)
			return errInternal(c, "An error occurred while fetching Wandersteine")
		}
		return c.JSON(toListItems(stones))
	}
}

// NearbyWandersteineHandler returns stones within a radius of a center
// point. All three parameters are optional; see usecases.NearbyQuery
// for the default center and radius policy.
func NearbyWandersteineHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q usecases.NearbyQuery
		var err error
		if q.Latitude, err = queryFloat(c, "latitude"); err != nil {
			return errBadRequest(c, err.Error())
		}
		if q.Longitude, err = queryFloat(c, "longitude"); err != nil {
			return errBadRequest(c, err.Error())
		}
		if q.RadiusKm, err = queryFloat(c, "radiusKm"); err != nil {
			return errBadRequest(c, err.Error())
		}

		centerLabel := "default"
		if q.Latitude != nil && q.Longitude != nil {
			centerLabel = "explicit"
		}
		metrics.NearbyQueries.WithLabelValues(centerLabel).Inc()

		stones, err := deps.Stones.FindNearby(c.UserContext(), q)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCoordinates) {
				return errBadRequest(c, "Invalid coordinates: the provided latitude or longitude values are outside valid ranges")
			}
			LoggerFromCtx(c.UserContext()).Error("fetch nearby wandersteine", "error", err)
			return errInternal(c, "An error occurred while fetching nearby Wandersteine")
		}

		metrics.NearbyResultCount.Observe(float64(len(stones)))
		c.Set("Cache-Control", "public, max-age=300")
		return c.JSON(toListItems(stones))
	}
}

// WandersteinByIDHandler returns the detail view of a single stone,
// looked up by its external unique identifier.
func WandersteinByIDHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uniqueID := c.Params("uniqueId")

		stone, err := deps.Stones.GetByUniqueID(c.UserContext(), uniqueID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errNotFound(c, fmt.Sprintf("The requested Wanderstein with ID '%s' was not found", uniqueID))
			}
			LoggerFromCtx(c.UserContext()).Error("fetch wanderstein", "unique_id", uniqueID, "error", err)
			return errInternal(c, "An error occurred while fetching the Wanderstein")
		}
		return c.JSON(toDetail(*stone))
	}
}

// TranslationsHandler returns the nested translation dictionary for one
// language.
func TranslationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		language := c.Params("language")

		dict, err := deps.Translations.ForLanguage(c.UserContext(), language)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errNotFound(c, fmt.Sprintf("No translations found for language '%s'", language))
			}
			LoggerFromCtx(c.UserContext()).Error("fetch translations", "language", language, "error", err)
			return errInternal(c, "An error occurred while retrieving translations")
		}
		return c.JSON(dict)
	}
}

// LanguagesHandler returns the supported language codes.
func LanguagesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		languages, err := deps.Translations.Languages(c.UserContext())
		if err != nil {
			slog.Error("fetch languages", "error", err)
			return errInternal(c, "An error occurred while retrieving supported languages")
		}
		if languages == nil {
			languages = []string{}
		}
		return c.JSON(languages)
	}
}
