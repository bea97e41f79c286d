package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = fmt.Errorf("record not found: %w", domain.ErrNotFound)

// Dialect names the backing database engine.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type Store struct {
	db      *sqlx.DB
	dialect Dialect
	logger  *observability.Logger
}

// Open connects to dsn. postgres:// and postgresql:// URLs use pgx; anything
// else is treated as the path of an embedded SQLite file.
func Open(dsn string, logger *observability.Logger) (Store, error) {
	if isPostgresDSN(dsn) {
		db, err := sqlx.Open("pgx", dsn)
		if err != nil {
			return Store{}, fmt.Errorf("failed to open postgres: %w", err)
		}
		return Store{db: db, dialect: DialectPostgres, logger: logger}, nil
	}

	path := strings.TrimPrefix(dsn, "sqlite://")
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Store{}, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := sqlx.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return Store{}, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	return Store{db: db, dialect: DialectSQLite, logger: logger}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Dialect reports which engine backs the store.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Error(ctx, "failed to rollback transaction", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type snapshotKey struct{}

// Snapshot runs fn with a context whose store reads share one read
// transaction, so they all see the same state. Nested calls reuse the outer
// transaction.
func (s *Store) Snapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(snapshotKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}
	var opts *sql.TxOptions
	if s.dialect == DialectPostgres {
		opts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	tx, err := s.db.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Error(ctx, "failed to end snapshot", rbErr)
		}
	}()
	return fn(context.WithValue(ctx, snapshotKey{}, tx))
}

// reader is the snapshot transaction carried by ctx, or the pool.
func (s *Store) reader(ctx context.Context) sqlx.QueryerContext {
	if tx, ok := ctx.Value(snapshotKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return s.db
}

// queryExecer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryExecer interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// Queries are written with ? placeholders and rebound per dialect.

func (s *Store) get(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, q, dest, s.db.Rebind(query), args...)
}

func (s *Store) sel(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, q, dest, s.db.Rebind(query), args...)
}

func (s *Store) exec(ctx context.Context, e sqlx.ExecerContext, query string, args ...any) (sql.Result, error) {
	return e.ExecContext(ctx, s.db.Rebind(query), args...)
}

// notFound maps sql.ErrNoRows to ErrNotFound and logs anything else.
func (s *Store) notFound(ctx context.Context, err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	s.logger.Error(ctx, "failed to "+op, err)
	return fmt.Errorf("failed to %s: %w", op, err)
}

func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
