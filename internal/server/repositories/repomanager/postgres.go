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
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Papers(db dbx.DBTX) papers.Repository {
	return papers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Words(db dbx.DBTX) words.Repository {
	return words.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) SnapshotTxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}

// RunMigrations applies the embedded postgres migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "pgx", migrations.PostgresDir)
}
