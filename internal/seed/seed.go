// Package seed holds the reference catalog fixtures: the 18 hiking
// stones and the de/en UI translations. cmd/seed writes them into
// Postgres; the memory storage driver loads them at startup.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
	"github.com/trailmarks-io/trailmarks/internal/core/ports"
)

func coord(lat, lon float64) *domain.GeoCoordinate {
	return &domain.GeoCoordinate{Latitude: lat, Longitude: lon}
}

// Stones returns the reference stones with creation times spread over
// the last 20 days, oldest first.
func Stones() []domain.Wanderstein {
	now := time.Now().UTC().Truncate(time.Second)

	stones := []domain.Wanderstein{
		{Name: "Schwarzwaldstein", UniqueID: "WS-2024-001", PreviewURL: "https://picsum.photos/300/200?random=1", Description: "Ein historischer Wanderstein im Herzen des Schwarzwaldes", Location: "Schwarzwald, Baden-Württemberg", Coordinates: coord(48.3019, 8.2392)},
		{Name: "Feldbergblick", UniqueID: "WS-2024-007", PreviewURL: "https://picsum.photos/300/200?random=7", Description: "Wanderstein am höchsten Punkt des Schwarzwaldes", Location: "Feldberg, Baden-Württemberg", Coordinates: coord(47.8742, 8.0044)},
		{Name: "Titisee Rundweg", UniqueID: "WS-2024-008", PreviewURL: "https://picsum.photos/300/200?random=8", Description: "Malerischer Wanderstein am Titisee", Location: "Titisee-Neustadt, Baden-Württemberg", Coordinates: coord(47.9034, 8.2064)},
		{Name: "Triberger Wasserfall", UniqueID: "WS-2024-009", PreviewURL: "https://picsum.photos/300/200?random=9", Description: "Wanderstein bei Deutschlands höchsten Wasserfällen", Location: "Triberg, Baden-Württemberg", Coordinates: coord(48.1294, 8.2303)},
		{Name: "Loreley Felsen", UniqueID: "WS-2024-010", PreviewURL: "https://picsum.photos/300/200?random=10", Description: "Legendärer Wanderstein am Rhein", Location: "St. Goarshausen, Rheinland-Pfalz", Coordinates: coord(50.1389, 7.7311)},
		{Name: "Burg Rheinfels", UniqueID: "WS-2024-011", PreviewURL: "https://picsum.photos/300/200?random=11", Description: "Wanderstein an historischer Burgruine", Location: "St. Goar, Rheinland-Pfalz", Coordinates: coord(50.1503, 7.7142)},
		{Name: "Rheinsteig Aussicht", UniqueID: "WS-2024-012", PreviewURL: "https://picsum.photos/300/200?random=12", Description: "Panoramablick über das Rheintal", Location: "Boppard, Rheinland-Pfalz", Coordinates: coord(50.2319, 7.5897)},
		{Name: "Alpenblick", UniqueID: "WS-2024-004", PreviewURL: "https://picsum.photos/300/200?random=4", Description: "Wanderstein auf dem höchsten Punkt der Route", Location: "Allgäu, Bayern", Coordinates: coord(47.5596, 10.7498)},
		{Name: "Nebelhorn", UniqueID: "WS-2024-013", PreviewURL: "https://picsum.photos/300/200?random=13", Description: "Hochalpiner Wanderstein mit 400-Gipfel-Blick", Location: "Oberstdorf, Bayern", Coordinates: coord(47.4119, 10.3233)},
		{Name: "Königssee Panorama", UniqueID: "WS-2024-014", PreviewURL: "https://picsum.photos/300/200?random=14", Description: "Wanderstein am smaragdgrünen Königssee", Location: "Schönau am Königssee, Bayern", Coordinates: coord(47.5667, 12.9833)},
		{Name: "Watzmann Ostwand", UniqueID: "WS-2024-015", PreviewURL: "https://picsum.photos/300/200?random=15", Description: "Wanderstein mit Blick auf die berühmte Ostwand", Location: "Berchtesgaden, Bayern", Coordinates: coord(47.5550, 12.9350)},
		{Name: "Brocken Gipfel", UniqueID: "WS-2024-016", PreviewURL: "https://picsum.photos/300/200?random=16", Description: "Wanderstein auf dem höchsten Harzgipfel", Location: "Wernigerode, Sachsen-Anhalt", Coordinates: coord(51.7992, 10.6147)},
		{Name: "Hexentanzplatz", UniqueID: "WS-2024-017", PreviewURL: "https://picsum.photos/300/200?random=17", Description: "Mystischer Wanderstein an sagenhaftem Ort", Location: "Thale, Sachsen-Anhalt", Coordinates: coord(51.7503, 11.0308)},
		{Name: "Rappbodetalsperre", UniqueID: "WS-2024-018", PreviewURL: "https://picsum.photos/300/200?random=18", Description: "Wanderstein an der größten Talsperre im Harz", Location: "Oberharz am Brocken, Sachsen-Anhalt", Coordinates: coord(51.7489, 10.9044)},
		{Name: "Rocky Mountain Summit", UniqueID: "WS-2024-002", PreviewURL: "https://picsum.photos/300/200?random=2", Description: "Wanderstein mit herrlichem Blick auf die Rocky Mountains", Location: "Colorado, USA", Coordinates: coord(39.7392, -104.9903)},
		{Name: "Mount Fuji Trail", UniqueID: "WS-2024-003", PreviewURL: "https://picsum.photos/300/200?random=3", Description: "Markanter Stein auf dem Weg zum Mount Fuji", Location: "Fujinomiya, Japan", Coordinates: coord(35.3606, 138.7278)},
		{Name: "Outback Stone", UniqueID: "WS-2024-005", PreviewURL: "https://picsum.photos/300/200?random=5", Description: "Ruhiger Wanderstein im australischen Outback", Location: "Uluru, Northern Territory, Australia", Coordinates: coord(-25.3444, 131.0369)},
		{Name: "Patagonia Vista", UniqueID: "WS-2024-006", PreviewURL: "https://picsum.photos/300/200?random=6", Description: "Wanderstein mit Blick auf die patagonische Landschaft", Location: "Torres del Paine, Chile", Coordinates: coord(-51.2527, -72.9653)},
	}

	for i := range stones {
		ts := now.AddDate(0, 0, i-len(stones))
		stones[i].CreatedAt = ts
		stones[i].UpdatedAt = ts
	}
	return stones
}

// Translations returns the de/en UI texts.
func Translations() []domain.Translation {
	texts := map[string]map[string]string{
		"de": {
			"common.loading":           "Lädt...",
			"common.error":             "Fehler",
			"common.retry":             "Erneut versuchen",
			"common.noData":            "Keine Daten gefunden",
			"wanderstein.title":        "Neueste Wandersteine",
			"wanderstein.subtitle":     "Die 5 zuletzt hinzugefügten Wandersteine",
			"wanderstein.loading":      "Lade Wandersteine...",
			"wanderstein.error":        "Fehler beim Laden der Wandersteine",
			"wanderstein.noData":       "Keine Wandersteine gefunden.",
			"wanderstein.addedOn":      "Hinzugefügt",
			"wanderstein.map.title":    "Kartenübersicht",
			"wanderstein.recent.title": "Neueste Wandersteine",
		},
		"en": {
			"common.loading":           "Loading...",
			"common.error":             "Error",
			"common.retry":             "Retry",
			"common.noData":            "No data found",
			"wanderstein.title":        "Latest Hiking Stones",
			"wanderstein.subtitle":     "The 5 most recently added hiking stones",
			"wanderstein.loading":      "Loading hiking stones...",
			"wanderstein.error":        "Error loading hiking stones",
			"wanderstein.noData":       "No hiking stones found.",
			"wanderstein.addedOn":      "Added on",
			"wanderstein.map.title":    "Map Overview",
			"wanderstein.recent.title": "Recent Hiking Stones",
		},
	}

	var translations []domain.Translation
	for lang, entries := range texts {
		for key, value := range entries {
			translations = append(translations, domain.Translation{
				Key:      key,
				Language: lang,
				Value:    value,
			})
		}
	}
	return translations
}

// Apply upserts all fixtures through the given repositories.
func Apply(ctx context.Context, stones ports.WandersteinRepository, translations ports.TranslationRepository) error {
	for _, s := range Stones() {
		stone := s
		if err := stones.Upsert(ctx, &stone); err != nil {
			return fmt.Errorf("seed stone %s: %w", stone.UniqueID, err)
		}
	}
	for _, t := range Translations() {
		tr := t
		if err := translations.Upsert(ctx, &tr); err != nil {
			return fmt.Errorf("seed translation %s/%s: %w", tr.Language, tr.Key, err)
		}
	}
	return nil
}
