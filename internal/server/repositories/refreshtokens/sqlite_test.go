package refreshtokens

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_Lifecycle(t *testing.T) {
	db := repotest.SQLite(t)
	_, err := db.Exec(`INSERT INTO users (id, username, password_hash) VALUES ('u1', 'alice', 'h')`)
	require.NoError(t, err)

	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "u1", "tok", time.Hour))

	got, err := repo.Find(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.Expires, time.Minute)

	require.NoError(t, repo.Delete(ctx, "tok"))
	require.NoError(t, repo.Delete(ctx, "tok"))

	_, err = repo.Find(ctx, "tok")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_UnknownUserRejected(t *testing.T) {
	repo := NewSQLiteRepository(repotest.SQLite(t))

	err := repo.Create(context.Background(), "ghost", "tok", time.Hour)
	require.Error(t, err, "foreign key enforced")
}
