package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/holocron/holocron-go/internal/model"
)

const userColumns = `u.id, u.name, u.last_name, u.email, u.password, u.is_active`

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
// Password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return insertUser(ctx, r.db, r.db, user)
}

func insertUser(ctx context.Context, db *DB, q querier, user *model.User) error {
	query := `INSERT INTO users (name, last_name, email, password, is_active) VALUES (?, ?, ?, ?, ?)`

	id, err := db.insert(ctx, q, query, user.Name, user.LastName, user.Email, user.Password, user.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return errors.Wrap(err, "inserting user")
	}

	user.ID = id
	return nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = ?`

	user := &model.User{}
	err := scanUser(r.db.QueryRowContext(ctx, r.db.dialect.rebind(query), id), user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrapf(err, "getting user %d", id)
	}

	return user, nil
}

// First returns the user with the lowest id.
func (r *UserRepository) First(ctx context.Context) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u ORDER BY u.id LIMIT 1`

	user := &model.User{}
	err := scanUser(r.db.QueryRowContext(ctx, query), user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "getting first user")
	}

	return user, nil
}

// List retrieves all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return listUsers(ctx, r.db)
}

// ListWithFavorites retrieves all users and every favorite row, keyed by user id,
// from one consistent snapshot.
func (r *UserRepository) ListWithFavorites(ctx context.Context) ([]model.User, map[int64]model.Favorites, error) {
	var users []model.User
	byUser := make(map[int64]model.Favorites)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if users, err = listUsers(ctx, tx); err != nil {
			return err
		}

		all, err := listFavorites(ctx, r.db, tx, "", nil)
		if err != nil {
			return err
		}
		for _, fp := range all.Planets {
			favs := byUser[fp.UserID]
			favs.Planets = append(favs.Planets, fp)
			byUser[fp.UserID] = favs
		}
		for _, fc := range all.Characters {
			favs := byUser[fc.UserID]
			favs.Characters = append(favs.Characters, fc)
			byUser[fc.UserID] = favs
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return users, byUser, nil
}

func listUsers(ctx context.Context, q querier) ([]model.User, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+userColumns+` FROM users u ORDER BY u.id`)
	if err != nil {
		return nil, errors.Wrap(err, "listing users")
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, errors.Wrap(err, "scanning user")
		}
		users = append(users, u)
	}

	return users, errors.Wrap(rows.Err(), "listing users")
}

func scanUser(row scanner, u *model.User) error {
	return row.Scan(&u.ID, &u.Name, &u.LastName, &u.Email, &u.Password, &u.IsActive)
}
