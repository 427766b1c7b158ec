package service

import (
	"context"
	"errors"

	"github.com/planetary/planetary-api/internal/model"
	"github.com/planetary/planetary-api/internal/repository"
)

var (
	ErrPlanetExists   = errors.New("planet name already taken")
	ErrPlanetNotFound = errors.New("planet not found")
)

// PlanetService handles planet business logic.
type PlanetService struct {
	repo *repository.PlanetRepository
}

// NewPlanetService creates a new PlanetService.
func NewPlanetService(repo *repository.PlanetRepository) *PlanetService {
	return &PlanetService{repo: repo}
}

// List returns all planets in insertion order.
func (s *PlanetService) List(ctx context.Context) ([]model.PlanetResponse, error) {
	planets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return model.ToPlanetResponses(planets), nil
}

// Get returns a single planet by ID.
func (s *PlanetService) Get(ctx context.Context, id int64) (model.PlanetResponse, error) {
	planet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return model.PlanetResponse{}, ErrPlanetNotFound
		}
		return model.PlanetResponse{}, err
	}

	return model.ToPlanetResponse(*planet), nil
}

// Add creates a new planet unless one with the same name already exists.
func (s *PlanetService) Add(ctx context.Context, req model.AddPlanetRequest) error {
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return err
	}
	if exists {
		return ErrPlanetExists
	}

	planet := &model.Planet{
		Name:     req.Name,
		Category: req.Category,
		HomeStar: req.HomeStar,
		Mass:     req.Mass,
		Radius:   req.Radius,
		Distance: req.Distance,
	}

	return s.repo.Create(ctx, planet)
}
