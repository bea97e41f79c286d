package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"air-relatorios/internal/observability"
)

// TestDB wraps a migrated test database.
type TestDB struct {
	Store Store
}

// SetupTestDB opens a migrated store for tests. TEST_DATABASE_URL selects a
// Postgres server; otherwise a fresh SQLite file in t.TempDir() is used.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = filepath.Join(t.TempDir(), "test.db")
	}

	s, err := Open(dsn, observability.NewNopLogger())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if _, err := s.Migrate(context.Background()); err != nil {
		s.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tdb := &TestDB{Store: s}
	if s.Dialect() == DialectPostgres {
		tdb.Truncate(t)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return tdb
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	tables := []string{
		"share_tokens", "insights", "comments", "posts", "campaign_influencers",
		"campaigns", "influencers", "categories", "clients", "invites", "users",
	}
	for _, table := range tables {
		if _, err := tdb.Store.db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.Store.db.Exec(tdb.Store.db.Rebind(query), args...); err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}
