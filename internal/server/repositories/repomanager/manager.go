// Package repomanager vends the repositories of one database backend and
// applies its embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studydesk/internal/dbx"
	"github.com/dmitrijs2005/studydesk/internal/server/migrations"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/papers"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/users"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/words"
	"github.com/pressly/goose/v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Papers(db dbx.DBTX) papers.Repository
	Words(db dbx.DBTX) words.Repository
	// SnapshotTxOptions are the options for a read-only transaction that
	// sees both tables at one point in time.
	SnapshotTxOptions() *sql.TxOptions
}

// New returns the manager for driver ("postgres" or "sqlite").
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres:
		return &PostgresRepositoryManager{}, nil
	case DriverSQLite:
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// Open connects to the database and returns it together with its manager.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	m, err := New(driver)
	if err != nil {
		return nil, nil, err
	}

	var db *sql.DB
	switch driver {
	case DriverPostgres:
		db, err = sql.Open("pgx", dsn)
	case DriverSQLite:
		db, err = sql.Open("sqlite", sqliteDSN(dsn))
		if err == nil {
			// one writer at a time keeps SQLite from returning SQLITE_BUSY
			db.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("db open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}
	return db, m, nil
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, dir)
}
