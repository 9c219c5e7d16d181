package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holocron/holocron-go/internal/model"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func createUser(t *testing.T, db *DB, name, email string) *model.User {
	t.Helper()
	u := &model.User{Name: name, LastName: "Tester", Email: email, Password: "$argon2id$hash", IsActive: true}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func createPlanet(t *testing.T, db *DB, name string) *model.Planet {
	t.Helper()
	p := &model.Planet{Name: name, Population: strPtr("unknown"), Diameter: 10465}
	require.NoError(t, NewPlanetRepository(db).Create(context.Background(), p))
	return p
}

func createCharacter(t *testing.T, db *DB, name string) *model.Character {
	t.Helper()
	c := &model.Character{Name: strPtr(name), Gender: strPtr("male"), Height: intPtr(172)}
	require.NoError(t, NewCharacterRepository(db).Create(context.Background(), c))
	return c
}
