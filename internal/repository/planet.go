package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/planetary/planetary-api/internal/model"
)

var ErrPlanetNotFound = errors.New("planet not found")

// PlanetRepository handles planet persistence operations.
type PlanetRepository struct {
	db *sqlx.DB
}

// NewPlanetRepository creates a new PlanetRepository.
func NewPlanetRepository(db *sqlx.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// Create inserts a new planet and sets the generated ID on the planet struct.
func (r *PlanetRepository) Create(ctx context.Context, planet *model.Planet) error {
	query := `INSERT INTO planets (name, category, home_star, mass, radius, distance) VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		planet.Name, planet.Category, planet.HomeStar, planet.Mass, planet.Radius, planet.Distance,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	planet.ID = id
	return nil
}

// GetByID retrieves a planet by its ID.
func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*model.Planet, error) {
	query := `SELECT id, name, category, home_star, mass, radius, distance FROM planets WHERE id = ?`

	planet := &model.Planet{}
	if err := r.db.GetContext(ctx, planet, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}

	return planet, nil
}

// ExistsByName reports whether a planet with the given name exists.
func (r *PlanetRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM planets WHERE name = ?)`, name)
	return exists, err
}

// List retrieves all planets in insertion order.
func (r *PlanetRepository) List(ctx context.Context) ([]model.Planet, error) {
	query := `SELECT id, name, category, home_star, mass, radius, distance FROM planets ORDER BY id`

	var planets []model.Planet
	if err := r.db.SelectContext(ctx, &planets, query); err != nil {
		return nil, err
	}

	return planets, nil
}
