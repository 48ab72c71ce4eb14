package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
)

// TranslationRepo is an in-process ports.TranslationRepository.
type TranslationRepo struct {
	mu           sync.RWMutex
	translations map[string]domain.Translation // by language + "\x00" + key
	nextID       uint
}

// NewTranslationRepo creates an empty in-memory repository.
func NewTranslationRepo() *TranslationRepo {
	return &TranslationRepo{translations: make(map[string]domain.Translation), nextID: 1}
}

// Upsert inserts or updates a translation keyed by (key, language).
func (r *TranslationRepo) Upsert(ctx context.Context, tr *domain.Translation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := tr.Language + "\x00" + tr.Key
	stored := *tr
	if existing, ok := r.translations[k]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = r.nextID
		r.nextID++
	}
	r.translations[k] = stored
	return nil
}

// ListByLanguage returns all translations for a language code.
func (r *TranslationRepo) ListByLanguage(ctx context.Context, language string) ([]domain.Translation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Translation
	for _, tr := range r.translations {
		if tr.Language == language {
			result = append(result, tr)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

// Languages returns the distinct language codes, sorted.
func (r *TranslationRepo) Languages(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var languages []string
	for _, tr := range r.translations {
		if !seen[tr.Language] {
			seen[tr.Language] = true
			languages = append(languages, tr.Language)
		}
	}
	sort.Strings(languages)
	return languages, nil
}
