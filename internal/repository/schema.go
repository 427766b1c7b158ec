package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/planetary/planetary-api/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT,
	last_name  TEXT,
	email      TEXT UNIQUE,
	password   TEXT
);

CREATE TABLE IF NOT EXISTS planets (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT,
	category  TEXT,
	home_star TEXT,
	mass      REAL,
	radius    REAL,
	distance  REAL
);`

// Migrate creates the users and planets tables if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Drop removes both tables.
func Drop(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS users; DROP TABLE IF EXISTS planets;`)
	return err
}

// Seed inserts the sample planets and a test user. It is idempotent:
// when the planets table already has rows it does nothing.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM planets`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	planets := []model.Planet{
		{Name: "Mercury", Category: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
		{Name: "Venus", Category: "Class K", HomeStar: "Sol", Mass: 4.867e24, Radius: 3760, Distance: 67.24e6},
		{Name: "Earth", Category: "Class M", HomeStar: "Sol", Mass: 5.972e24, Radius: 3959, Distance: 92.96e6},
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range planets {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO planets (name, category, home_star, mass, radius, distance) VALUES (?, ?, ?, ?, ?, ?)`,
			p.Name, p.Category, p.HomeStar, p.Mass, p.Radius, p.Distance,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name, email, password) VALUES (?, ?, ?, ?)`,
		"Wiliam", "Herschel", "test@test.com", "P@ssw0rd",
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}
