package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/server/models"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/repotest"
	"github.com/stretchr/testify/require"
)

func TestSQLite_CreateAndFind(t *testing.T) {
	repo := NewSQLiteRepository(repotest.SQLite(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u1", Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "u2", Username: "alice", PasswordHash: "h"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	u, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)

	_, err = repo.GetUserByLogin(ctx, "bob")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
