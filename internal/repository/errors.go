package repository

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrPlanetNotFound    = errors.New("planet not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrReferenceNotFound = errors.New("referenced row not found")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// missingReference marks err as both a reference failure and the specific
// missing entity so callers can test for either.
func missingReference(err error) error {
	return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"

	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
)

// isForeignKeyViolation checks whether a driver error reports a missing referenced row.
func isForeignKeyViolation(err error) bool {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoReferencedRow
	}
	return false
}

// isUniqueViolation checks whether a driver error reports a duplicate key.
func isUniqueViolation(err error) bool {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return false
}
