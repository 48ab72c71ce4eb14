package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
	"github.com/trailmarks-io/trailmarks/internal/core/usecases"
)

type mockTranslationRepo struct {
	listFn      func(ctx context.Context, language string) ([]domain.Translation, error)
	languagesFn func(ctx context.Context) ([]string, error)
}

func (m *mockTranslationRepo) Upsert(ctx context.Context, tr *domain.Translation) error { return nil }

func (m *mockTranslationRepo) ListByLanguage(ctx context.Context, language string) ([]domain.Translation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, language)
	}
	return nil, nil
}

func (m *mockTranslationRepo) Languages(ctx context.Context) ([]string, error) {
	if m.languagesFn != nil {
		return m.languagesFn(ctx)
	}
	return nil, nil
}

func TestTranslationService_ForLanguage_NestsDotKeys(t *testing.T) {
	repo := &mockTranslationRepo{
		listFn: func(ctx context.Context, language string) ([]domain.Translation, error) {
			return []domain.Translation{
				{Key: "common.loading", Language: "de", Value: "Lädt..."},
				{Key: "wanderstein.title", Language: "de", Value: "Neueste Wandersteine"},
				{Key: "wanderstein.map.title", Language: "de", Value: "Kartenübersicht"},
			}, nil
		},
	}

	svc := usecases.NewTranslationService(repo)
	dict, err := svc.ForLanguage(context.Background(), "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	common, ok := dict["common"].(map[string]any)
	if !ok || common["loading"] != "Lädt..." {
		t.Errorf("common.loading = %v", dict["common"])
	}
	ws, ok := dict["wanderstein"].(map[string]any)
	if !ok || ws["title"] != "Neueste Wandersteine" {
		t.Fatalf("wanderstein.title = %v", dict["wanderstein"])
	}
	mp, ok := ws["map"].(map[string]any)
	if !ok || mp["title"] != "Kartenübersicht" {
		t.Errorf("wanderstein.map.title = %v", ws["map"])
	}
}

func TestTranslationService_ForLanguage_ConflictKeepsFirst(t *testing.T) {
	// "a.b" claims the slot as a string; "a.b.c" cannot nest under it
	// and is dropped.
	repo := &mockTranslationRepo{
		listFn: func(ctx context.Context, language string) ([]domain.Translation, error) {
			return []domain.Translation{
				{Key: "a.b", Language: "en", Value: "first"},
				{Key: "a.b.c", Language: "en", Value: "second"},
			}, nil
		},
	}

	svc := usecases.NewTranslationService(repo)
	dict, err := svc.ForLanguage(context.Background(), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, ok := dict["a"].(map[string]any)
	if !ok {
		t.Fatalf("a = %v", dict["a"])
	}
	if a["b"] != "first" {
		t.Errorf("a.b = %v, want first", a["b"])
	}
}

func TestTranslationService_ForLanguage_Unknown(t *testing.T) {
	svc := usecases.NewTranslationService(&mockTranslationRepo{})
	_, err := svc.ForLanguage(context.Background(), "fr")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestTranslationService_ForLanguage_LowercasesCode(t *testing.T) {
	var gotLang string
	repo := &mockTranslationRepo{
		listFn: func(ctx context.Context, language string) ([]domain.Translation, error) {
			gotLang = language
			return []domain.Translation{{Key: "common.error", Language: "de", Value: "Fehler"}}, nil
		},
	}

	svc := usecases.NewTranslationService(repo)
	if _, err := svc.ForLanguage(context.Background(), "DE"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLang != "de" {
		t.Errorf("repo queried with %q, want de", gotLang)
	}
}

func TestTranslationService_Languages(t *testing.T) {
	repo := &mockTranslationRepo{
		languagesFn: func(ctx context.Context) ([]string, error) {
			return []string{"de", "en"}, nil
		},
	}

	svc := usecases.NewTranslationService(repo)
	langs, err := svc.Languages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Errorf("languages = %v", langs)
	}
}
