package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/holocron/holocron-go/internal/model"
)

const planetColumns = `p.id, p.name, p.population, p.diameter`

// PlanetRepository handles planet persistence operations.
type PlanetRepository struct {
	db *DB
}

// NewPlanetRepository creates a new PlanetRepository.
func NewPlanetRepository(db *DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// Create inserts a new planet and sets the generated ID on the struct.
func (r *PlanetRepository) Create(ctx context.Context, p *model.Planet) error {
	return insertPlanet(ctx, r.db, r.db, p)
}

func insertPlanet(ctx context.Context, db *DB, q querier, p *model.Planet) error {
	query := `INSERT INTO planets (name, population, diameter) VALUES (?, ?, ?)`

	id, err := db.insert(ctx, q, query, p.Name, p.Population, p.Diameter)
	if err != nil {
		return errors.Wrap(err, "inserting planet")
	}

	p.ID = id
	return nil
}

// GetByID retrieves a planet by ID.
func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*model.Planet, error) {
	query := `SELECT ` + planetColumns + ` FROM planets p WHERE p.id = ?`

	p := &model.Planet{}
	err := scanPlanet(r.db.QueryRowContext(ctx, r.db.dialect.rebind(query), id), p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanetNotFound
		}
		return nil, errors.Wrapf(err, "getting planet %d", id)
	}

	return p, nil
}

// List retrieves all planets ordered by id.
func (r *PlanetRepository) List(ctx context.Context) ([]model.Planet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planetColumns+` FROM planets p ORDER BY p.id`)
	if err != nil {
		return nil, errors.Wrap(err, "listing planets")
	}
	defer rows.Close()

	var planets []model.Planet
	for rows.Next() {
		var p model.Planet
		if err := scanPlanet(rows, &p); err != nil {
			return nil, errors.Wrap(err, "scanning planet")
		}
		planets = append(planets, p)
	}

	return planets, errors.Wrap(rows.Err(), "listing planets")
}

func scanPlanet(row scanner, p *model.Planet) error {
	return row.Scan(&p.ID, &p.Name, &p.Population, &p.Diameter)
}
