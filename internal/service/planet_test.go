package service

import (
	"context"
	"errors"
	"testing"

	"github.com/planetary/planetary-api/internal/model"
	"github.com/planetary/planetary-api/internal/repository"
)

func newTestPlanetService(t *testing.T) *PlanetService {
	t.Helper()

	db, err := repository.NewDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repository.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewPlanetService(repository.NewPlanetRepository(db))
}

func TestAddAndGetRoundTrip(t *testing.T) {
	svc := newTestPlanetService(t)
	ctx := context.Background()

	req := model.AddPlanetRequest{
		Name:     "Mercury",
		Category: "Class D",
		HomeStar: "Sol",
		Mass:     3.258e23,
		Radius:   1516,
		Distance: 35.98e6,
	}
	if err := svc.Add(ctx, req); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	want := model.PlanetResponse{
		ID:       1,
		Name:     "Mercury",
		Category: "Class D",
		HomeStar: "Sol",
		Mass:     3.258e23,
		Radius:   1516,
		Distance: 35.98e6,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAddDuplicateName(t *testing.T) {
	svc := newTestPlanetService(t)
	ctx := context.Background()

	if err := svc.Add(ctx, model.AddPlanetRequest{Name: "Earth"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	err := svc.Add(ctx, model.AddPlanetRequest{Name: "Earth"})
	if !errors.Is(err, ErrPlanetExists) {
		t.Errorf("expected ErrPlanetExists, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newTestPlanetService(t)

	_, err := svc.Get(context.Background(), 999999)
	if !errors.Is(err, ErrPlanetNotFound) {
		t.Errorf("expected ErrPlanetNotFound, got %v", err)
	}
}

func TestListLengthTracksStore(t *testing.T) {
	svc := newTestPlanetService(t)
	ctx := context.Background()

	planets, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(planets) != 0 {
		t.Fatalf("empty store: list length = %d, want 0", len(planets))
	}

	for i, name := range []string{"Mercury", "Venus", "Earth"} {
		if err := svc.Add(ctx, model.AddPlanetRequest{Name: name}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}

		planets, err = svc.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(planets) != i+1 {
			t.Errorf("list length = %d, want %d", len(planets), i+1)
		}
	}
}
