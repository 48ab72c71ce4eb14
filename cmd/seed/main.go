package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/trailmarks-io/trailmarks/internal/adapters/postgres"
	"github.com/trailmarks-io/trailmarks/internal/pkg/config"
	"github.com/trailmarks-io/trailmarks/internal/pkg/logging"
	"github.com/trailmarks-io/trailmarks/internal/seed"
)

func main() {
	cfg, err := config.Load("trailmarks-seed")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.Setup("info", "text")

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	stones := postgres.NewWandersteinRepo(db)
	translations := postgres.NewTranslationRepo(db)

	if err := seed.Apply(ctx, stones, translations); err != nil {
		log.Fatalf("seed: %v", err)
	}

	slog.Info("seed complete",
		"stones", len(seed.Stones()),
		"translations", len(seed.Translations()))
}
