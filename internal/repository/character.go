package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/holocron/holocron-go/internal/model"
)

const characterColumns = `c.id, c.name, c.gender, c.hair_color, c.eye_color, c.height, c.weight`

// CharacterRepository handles character persistence operations.
type CharacterRepository struct {
	db *DB
}

// NewCharacterRepository creates a new CharacterRepository.
func NewCharacterRepository(db *DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create inserts a new character and sets the generated ID on the struct.
func (r *CharacterRepository) Create(ctx context.Context, c *model.Character) error {
	return insertCharacter(ctx, r.db, r.db, c)
}

func insertCharacter(ctx context.Context, db *DB, q querier, c *model.Character) error {
	query := `INSERT INTO characters (name, gender, hair_color, eye_color, height, weight) VALUES (?, ?, ?, ?, ?, ?)`

	id, err := db.insert(ctx, q, query, c.Name, c.Gender, c.HairColor, c.EyeColor, c.Height, c.Weight)
	if err != nil {
		return errors.Wrap(err, "inserting character")
	}

	c.ID = id
	return nil
}

// GetByID retrieves a character by ID.
func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*model.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters c WHERE c.id = ?`

	c := &model.Character{}
	err := scanCharacter(r.db.QueryRowContext(ctx, r.db.dialect.rebind(query), id), c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCharacterNotFound
		}
		return nil, errors.Wrapf(err, "getting character %d", id)
	}

	return c, nil
}

// List retrieves all characters ordered by id.
func (r *CharacterRepository) List(ctx context.Context) ([]model.Character, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+characterColumns+` FROM characters c ORDER BY c.id`)
	if err != nil {
		return nil, errors.Wrap(err, "listing characters")
	}
	defer rows.Close()

	var characters []model.Character
	for rows.Next() {
		var c model.Character
		if err := scanCharacter(rows, &c); err != nil {
			return nil, errors.Wrap(err, "scanning character")
		}
		characters = append(characters, c)
	}

	return characters, errors.Wrap(rows.Err(), "listing characters")
}

func scanCharacter(row scanner, c *model.Character) error {
	return row.Scan(&c.ID, &c.Name, &c.Gender, &c.HairColor, &c.EyeColor, &c.Height, &c.Weight)
}
