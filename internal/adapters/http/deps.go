package http

import (
	"github.com/trailmarks-io/trailmarks/internal/adapters/postgres"
	"github.com/trailmarks-io/trailmarks/internal/adapters/valkey"
	"github.com/trailmarks-io/trailmarks/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers. DB and Cache
// are nil when the memory storage driver is selected or the cache is
// disabled; the readiness probe skips them then.
type Dependencies struct {
	Stones       *usecases.WandersteinService
	Translations *usecases.TranslationService
	DB           *postgres.DB
	Cache        *valkey.Cache
}
