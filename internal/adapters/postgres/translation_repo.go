package postgres

import (
	"context"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
)

// TranslationRepo implements ports.TranslationRepository with pgx.
type TranslationRepo struct {
	db *DB
}

// NewTranslationRepo creates a new TranslationRepo.
func NewTranslationRepo(db *DB) *TranslationRepo {
	return &TranslationRepo{db: db}
}

// Upsert inserts or updates a translation keyed by (key, language).
func (r *TranslationRepo) Upsert(ctx context.Context, tr *domain.Translation) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO translations (key, language, value, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (key, language) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`, tr.Key, tr.Language, tr.Value)
	return err
}

// ListByLanguage returns all translations for a language code.
func (r *TranslationRepo) ListByLanguage(ctx context.Context, language string) ([]domain.Translation, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, key, language, value, created_at, updated_at
		FROM translations WHERE language = $1
	`, language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []domain.Translation
	for rows.Next() {
		var tr domain.Translation
		if err := rows.Scan(&tr.ID, &tr.Key, &tr.Language, &tr.Value, &tr.CreatedAt, &tr.UpdatedAt); err != nil {
			return nil, err
		}
		translations = append(translations, tr)
	}
	return translations, rows.Err()
}

// Languages returns the distinct language codes, sorted.
func (r *TranslationRepo) Languages(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT DISTINCT language FROM translations ORDER BY language
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, err
		}
		languages = append(languages, lang)
	}
	return languages, rows.Err()
}
