// Package repotest opens migrated throwaway databases for repository and
// service tests.
package repotest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/studydesk/internal/server/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLite returns a migrated SQLite database living in t.TempDir().
func SQLite(t testing.TB) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "store.db") + "?_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	p, err := goose.NewProvider(goose.DialectSQLite3, db, mustSub(t, migrations.SQLiteDir))
	if err != nil {
		t.Fatalf("goose provider: %v", err)
	}
	if _, err := p.Up(t.Context()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
