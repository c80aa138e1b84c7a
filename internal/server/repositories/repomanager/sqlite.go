package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studydesk/internal/dbx"
	"github.com/dmitrijs2005/studydesk/internal/server/migrations"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/papers"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/users"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/words"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories for local
// development.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Papers(db dbx.DBTX) papers.Repository {
	return papers.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Words(db dbx.DBTX) words.Repository {
	return words.NewSQLiteRepository(db)
}

// SnapshotTxOptions returns nil: a plain SQLite transaction is already
// serializable.
func (m *SQLiteRepositoryManager) SnapshotTxOptions() *sql.TxOptions {
	return nil
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.SQLiteDir)
}
