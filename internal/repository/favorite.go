package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/holocron/holocron-go/internal/model"
)

const (
	favoritePlanetQuery = `SELECT f.id, f.user_id, f.planet_id, ` + userColumns + `, ` + planetColumns + `
		FROM favorite_planets f
		JOIN users u ON u.id = f.user_id
		JOIN planets p ON p.id = f.planet_id`

	favoriteCharacterQuery = `SELECT f.id, f.user_id, f.character_id, ` + userColumns + `, ` + characterColumns + `
		FROM favorite_characters f
		JOIN users u ON u.id = f.user_id
		JOIN characters c ON c.id = f.character_id`
)

// FavoriteRepository handles the favorite join rows.
type FavoriteRepository struct {
	db *DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// ListByUser returns the favorites of one user, or ErrUserNotFound if the user
// does not exist.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) (model.Favorites, error) {
	var favs model.Favorites

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.db.exists(ctx, tx, "users", userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserNotFound
		}

		favs, err = listFavorites(ctx, r.db, tx, "f.user_id = ?", []any{userID})
		return err
	})

	return favs, err
}

// ListAll returns every favorite row in the store.
func (r *FavoriteRepository) ListAll(ctx context.Context) (model.Favorites, error) {
	var favs model.Favorites

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		favs, err = listFavorites(ctx, r.db, tx, "", nil)
		return err
	})

	return favs, err
}

// AddPlanet records that a user likes a planet. Both must exist; otherwise the
// error matches ErrReferenceNotFound and ErrUserNotFound or ErrPlanetNotFound.
// Duplicates are allowed.
func (r *FavoriteRepository) AddPlanet(ctx context.Context, userID, planetID int64) (*model.FavoritePlanet, error) {
	var fav *model.FavoritePlanet

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := r.checkReferences(ctx, tx, userID, "planets", planetID, ErrPlanetNotFound); err != nil {
			return err
		}

		id, err := r.db.insert(ctx, tx, `INSERT INTO favorite_planets (user_id, planet_id) VALUES (?, ?)`, userID, planetID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrReferenceNotFound
			}
			return errors.Wrap(err, "inserting favorite planet")
		}

		fav = &model.FavoritePlanet{}
		row := tx.QueryRowContext(ctx, r.db.dialect.rebind(favoritePlanetQuery+` WHERE f.id = ?`), id)
		return errors.Wrap(scanFavoritePlanet(row, fav), "reading favorite planet")
	})
	if err != nil {
		return nil, err
	}

	return fav, nil
}

// AddCharacter records that a user likes a character, with the same contract as AddPlanet.
func (r *FavoriteRepository) AddCharacter(ctx context.Context, userID, characterID int64) (*model.FavoriteCharacter, error) {
	var fav *model.FavoriteCharacter

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := r.checkReferences(ctx, tx, userID, "characters", characterID, ErrCharacterNotFound); err != nil {
			return err
		}

		id, err := r.db.insert(ctx, tx, `INSERT INTO favorite_characters (user_id, character_id) VALUES (?, ?)`, userID, characterID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrReferenceNotFound
			}
			return errors.Wrap(err, "inserting favorite character")
		}

		fav = &model.FavoriteCharacter{}
		row := tx.QueryRowContext(ctx, r.db.dialect.rebind(favoriteCharacterQuery+` WHERE f.id = ?`), id)
		return errors.Wrap(scanFavoriteCharacter(row, fav), "reading favorite character")
	})
	if err != nil {
		return nil, err
	}

	return fav, nil
}

// RemovePlanet deletes a favorite planet row by the row's own id.
func (r *FavoriteRepository) RemovePlanet(ctx context.Context, favoriteID int64) error {
	return r.remove(ctx, "favorite_planets", favoriteID)
}

// RemoveCharacter deletes a favorite character row by the row's own id.
func (r *FavoriteRepository) RemoveCharacter(ctx context.Context, favoriteID int64) error {
	return r.remove(ctx, "favorite_characters", favoriteID)
}

func (r *FavoriteRepository) remove(ctx context.Context, table string, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.dialect.rebind(`DELETE FROM `+table+` WHERE id = ?`), id)
	if err != nil {
		return errors.Wrapf(err, "deleting from %s", table)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "deleting from %s", table)
	}

	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (r *FavoriteRepository) checkReferences(ctx context.Context, tx *sql.Tx, userID int64, table string, targetID int64, missing error) error {
	ok, err := r.db.exists(ctx, tx, "users", userID)
	if err != nil {
		return err
	}
	if !ok {
		return missingReference(ErrUserNotFound)
	}

	ok, err = r.db.exists(ctx, tx, table, targetID)
	if err != nil {
		return err
	}
	if !ok {
		return missingReference(missing)
	}
	return nil
}

// listFavorites loads favorite rows of both kinds, optionally filtered by a
// WHERE clause over the favorite table alias f.
func listFavorites(ctx context.Context, db *DB, q querier, where string, args []any) (model.Favorites, error) {
	favs := model.Favorites{}

	suffix := ` ORDER BY f.id`
	if where != "" {
		suffix = ` WHERE ` + where + suffix
	}

	rows, err := q.QueryContext(ctx, db.dialect.rebind(favoritePlanetQuery+suffix), args...)
	if err != nil {
		return favs, errors.Wrap(err, "listing favorite planets")
	}
	for rows.Next() {
		var fp model.FavoritePlanet
		if err := scanFavoritePlanet(rows, &fp); err != nil {
			rows.Close()
			return favs, errors.Wrap(err, "scanning favorite planet")
		}
		favs.Planets = append(favs.Planets, fp)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return favs, errors.Wrap(err, "listing favorite planets")
	}

	rows, err = q.QueryContext(ctx, db.dialect.rebind(favoriteCharacterQuery+suffix), args...)
	if err != nil {
		return favs, errors.Wrap(err, "listing favorite characters")
	}
	defer rows.Close()
	for rows.Next() {
		var fc model.FavoriteCharacter
		if err := scanFavoriteCharacter(rows, &fc); err != nil {
			return favs, errors.Wrap(err, "scanning favorite character")
		}
		favs.Characters = append(favs.Characters, fc)
	}

	return favs, errors.Wrap(rows.Err(), "listing favorite characters")
}

func scanFavoritePlanet(row scanner, f *model.FavoritePlanet) error {
	u, p := &f.User, &f.Planet
	return row.Scan(
		&f.ID, &f.UserID, &f.PlanetID,
		&u.ID, &u.Name, &u.LastName, &u.Email, &u.Password, &u.IsActive,
		&p.ID, &p.Name, &p.Population, &p.Diameter,
	)
}

func scanFavoriteCharacter(row scanner, f *model.FavoriteCharacter) error {
	u, c := &f.User, &f.Character
	return row.Scan(
		&f.ID, &f.UserID, &f.CharacterID,
		&u.ID, &u.Name, &u.LastName, &u.Email, &u.Password, &u.IsActive,
		&c.ID, &c.Name, &c.Gender, &c.HairColor, &c.EyeColor, &c.Height, &c.Weight,
	)
}
