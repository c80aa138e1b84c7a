package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/server/config"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/repotest"
)

func newStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	return repotest.SQLite(t), &repomanager.SQLiteRepositoryManager{}
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:       "test-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}
