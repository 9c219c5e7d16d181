package repository

import (
	"context"
	"database/sql"

	"github.com/holocron/holocron-go/internal/model"
)

// Batch inserts catalog rows inside a single transaction.
type Batch struct {
	db *DB
	tx *sql.Tx
}

// Batch runs fn in one transaction. Nothing fn inserted is kept if it
// returns an error.
func (db *DB) Batch(ctx context.Context, fn func(b *Batch) error) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		return fn(&Batch{db: db, tx: tx})
	})
}

func (b *Batch) CreateUser(ctx context.Context, user *model.User) error {
	return insertUser(ctx, b.db, b.tx, user)
}

func (b *Batch) CreateCharacter(ctx context.Context, c *model.Character) error {
	return insertCharacter(ctx, b.db, b.tx, c)
}

func (b *Batch) CreatePlanet(ctx context.Context, p *model.Planet) error {
	return insertPlanet(ctx, b.db, b.tx, p)
}
