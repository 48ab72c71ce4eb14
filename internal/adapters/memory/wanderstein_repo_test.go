package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/trailmarks-io/trailmarks/internal/adapters/memory"
	"github.com/trailmarks-io/trailmarks/internal/core/domain"
)

var (
	bochum = domain.GeoCoordinate{Latitude: 51.4818, Longitude: 7.2162}
	essen  = domain.GeoCoordinate{Latitude: 51.4556, Longitude: 7.0116}
	munich = domain.GeoCoordinate{Latitude: 48.1351, Longitude: 11.5820}
)

func seedRepo(t *testing.T, stones ...domain.Wanderstein) *memory.WandersteinRepo {
	t.Helper()
	repo := memory.NewWandersteinRepo()
	for i := range stones {
		if err := repo.Upsert(context.Background(), &stones[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func stone(uid string, coord *domain.GeoCoordinate, age time.Duration) domain.Wanderstein {
	ts := time.Date(2024, 8, 4, 12, 0, 0, 0, time.UTC).Add(-age)
	return domain.Wanderstein{
		Name:        "Stein " + uid,
		UniqueID:    uid,
		Coordinates: coord,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func uids(stones []domain.Wanderstein) []string {
	var ids []string
	for _, s := range stones {
		ids = append(ids, s.UniqueID)
	}
	return ids
}

func TestFindNearby_DefaultCenterScenario(t *testing.T) {
	// One stone at the default center, one ~14 km away (Essen), one
	// >400 km away (Munich). A 100 km radius around Bochum keeps the
	// first two, newest first.
	repo := seedRepo(t,
		stone("WS-NEAR-1", &bochum, 2*time.Hour),
		stone("WS-NEAR-2", &essen, 1*time.Hour),
		stone("WS-FAR-1", &munich, 30*time.Minute),
	)

	got, err := repo.FindNearby(context.Background(), bochum, 100*1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"WS-NEAR-2", "WS-NEAR-1"}
	if fmt.Sprint(uids(got)) != fmt.Sprint(want) {
		t.Errorf("nearby = %v, want %v", uids(got), want)
	}
}

func TestFindNearby_NarrowRadiusExcludesFormerMatches(t *testing.T) {
	repo := seedRepo(t,
		stone("WS-BOCHUM", &bochum, time.Hour),
		stone("WS-MUNICH", &munich, 30*time.Minute),
	)

	// 50 km around Munich: the Bochum stone (>400 km away) drops out.
	got, err := repo.FindNearby(context.Background(), munich, 50*1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].UniqueID != "WS-MUNICH" {
		t.Errorf("nearby = %v, want only WS-MUNICH", uids(got))
	}
}

func TestFindNearby_ExcludesStonesWithoutCoordinates(t *testing.T) {
	repo := seedRepo(t,
		stone("WS-LOCATED", &bochum, time.Hour),
		stone("WS-NOWHERE", nil, 30*time.Minute),
	)

	// Even a radius spanning the whole planet never matches a stone
	// without a position.
	got, err := repo.FindNearby(context.Background(), bochum, 25000*1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].UniqueID != "WS-LOCATED" {
		t.Errorf("nearby = %v, want only WS-LOCATED", uids(got))
	}
}

func TestFindNearby_ZeroRadiusIsEmptyNotError(t *testing.T) {
	repo := seedRepo(t, stone("WS-ESSEN", &essen, time.Hour))

	got, err := repo.FindNearby(context.Background(), bochum, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("nearby = %v, want empty", uids(got))
	}
}

func TestFindNearby_ZeroZeroIsARealPlace(t *testing.T) {
	gulfOfGuinea := domain.GeoCoordinate{Latitude: 0, Longitude: 0}
	repo := seedRepo(t, stone("WS-NULL-ISLAND", &gulfOfGuinea, time.Hour))

	got, err := repo.FindNearby(context.Background(), gulfOfGuinea, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Error("a stone at (0,0) must be findable, not treated as absent")
	}
}

func TestRecentAndAll_TruncationAndOrder(t *testing.T) {
	var stones []domain.Wanderstein
	for i := 1; i <= 7; i++ {
		stones = append(stones, stone(fmt.Sprintf("WS-2024-%03d", i), &bochum, time.Duration(i)*time.Hour))
	}
	repo := seedRepo(t, stones...)

	recent, err := repo.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("recent returned %d stones, want 5", len(recent))
	}

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 7 {
		t.Fatalf("all returned %d stones, want 7", len(all))
	}

	// Newest first, and recent is a prefix of all.
	for i := range all[:len(all)-1] {
		if all[i].CreatedAt.Before(all[i+1].CreatedAt) {
			t.Fatalf("all not ordered newest first at index %d", i)
		}
	}
	for i, s := range recent {
		if s.UniqueID != all[i].UniqueID {
			t.Errorf("recent[%d] = %s, all[%d] = %s", i, s.UniqueID, i, all[i].UniqueID)
		}
	}
}

func TestGetByUniqueID_RoundTrip(t *testing.T) {
	repo := memory.NewWandersteinRepo()
	in := domain.Wanderstein{
		Name:        "Marienplatz Stein",
		UniqueID:    "WS-TEST-001",
		Description: "Testbeschreibung",
		Location:    "München, Bayern",
		Coordinates: &domain.GeoCoordinate{Latitude: 48.137154, Longitude: 11.576124},
		CreatedAt:   time.Date(2024, 8, 4, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 8, 4, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.Upsert(context.Background(), &in); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetByUniqueID(context.Background(), "WS-TEST-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Coordinates == nil ||
		got.Coordinates.Latitude != 48.137154 || got.Coordinates.Longitude != 11.576124 {
		t.Errorf("coordinates = %+v", got.Coordinates)
	}
	if got.Description != "Testbeschreibung" || got.Location != "München, Bayern" {
		t.Errorf("fields = %q / %q", got.Description, got.Location)
	}

	_, err = repo.GetByUniqueID(context.Background(), "WS-DOES-NOT-EXIST")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpsert_ReplacesByUniqueID(t *testing.T) {
	repo := seedRepo(t, stone("WS-2024-001", &bochum, time.Hour))

	updated := stone("WS-2024-001", &essen, 30*time.Minute)
	updated.Name = "Umbenannt"
	if err := repo.Upsert(context.Background(), &updated); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	all, _ := repo.All(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 stone after re-upsert, got %d", len(all))
	}
	if all[0].Name != "Umbenannt" || all[0].Coordinates.Longitude != essen.Longitude {
		t.Errorf("stone not replaced: %+v", all[0])
	}
}
