package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
	"github.com/trailmarks-io/trailmarks/internal/core/ports"
)

// TranslationService serves UI translations.
type TranslationService struct {
	translations ports.TranslationRepository
}

// NewTranslationService creates a new TranslationService.
func NewTranslationService(translations ports.TranslationRepository) *TranslationService {
	return &TranslationService{translations: translations}
}

// ForLanguage returns all translations for a language as a nested map
// built from the dot-notation keys, so "wanderstein.title" becomes
// {"wanderstein": {"title": ...}}. Returns domain.ErrNotFound when the
// language has no translations.
func (s *TranslationService) ForLanguage(ctx context.Context, language string) (map[string]any, error) {
	rows, err := s.translations.ListByLanguage(ctx, strings.ToLower(language))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no translations for language %q: %w", language, domain.ErrNotFound)
	}

	result := make(map[string]any)
	for _, tr := range rows {
		setNested(result, tr.Key, tr.Value)
	}
	return result, nil
}

// Languages returns the distinct language codes, sorted.
func (s *TranslationService) Languages(ctx context.Context) ([]string, error) {
	return s.translations.Languages(ctx)
}

// setNested inserts value at the dot-separated key path. When a path
// segment is already occupied by a string (keys like "a.b" and "a.b.c"
// both present), the earlier value wins and the later one is dropped.
func setNested(dict map[string]any, key, value string) {
	parts := strings.Split(key, ".")
	current := dict
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			child := make(map[string]any)
			current[part] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return
		}
		current = child
	}
	current[parts[len(parts)-1]] = value
}
