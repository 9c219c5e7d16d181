package repository

import (
	"context"
	"database/sql"
	"embed"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// DB is a connection pool bound to the dialect of its driver.
type DB struct {
	*sql.DB
	dialect dialect
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// Open connects to the database named by url and verifies the connection.
func Open(ctx context.Context, url string) (*DB, error) {
	d, dsn, err := parseURL(url)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database", d.name)
	}

	if d == sqliteDialect {
		// SQLite serializes writers; one connection also keeps :memory: alive.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "pinging %s database at %s", d.name, redact(url))
	}

	zerolog.Ctx(ctx).Info().Str("dialect", d.name).Str("url", redact(url)).Msg("connected to database")

	return &DB{DB: conn, dialect: d}, nil
}

// Dialect names the SQL dialect in use.
func (db *DB) Dialect() string {
	return db.dialect.name
}

// Migrate creates any missing tables. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	ddl, err := schemaFS.ReadFile("schema/" + db.dialect.name + ".sql")
	if err != nil {
		return errors.Wrapf(err, "reading %s schema", db.dialect.name)
	}

	return db.withTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range strings.Split(string(ddl), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return errors.Wrap(err, "applying schema")
			}
		}
		return nil
	})
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting transaction")
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "committing transaction")
}

// insert runs an INSERT and returns the id assigned to the new row.
func (db *DB) insert(ctx context.Context, q querier, query string, args ...any) (int64, error) {
	query = db.dialect.rebind(query)

	if db.dialect.returning {
		var id int64
		if err := q.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// exists reports whether table has a row with the given id.
func (db *DB) exists(ctx context.Context, q querier, table string, id int64) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, db.dialect.rebind("SELECT 1 FROM "+table+" WHERE id = ?"), id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "checking %s %d", table, id)
	}
	return true, nil
}
