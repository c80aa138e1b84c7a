package services

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordService_Lifecycle(t *testing.T) {
	db, rm := newStore(t)
	svc := NewWordService(db, rm)
	ctx := t.Context()

	w, err := svc.Insert(ctx, domain.WordDraft{Word: "ephemeral", Definition: "short-lived"})
	require.NoError(t, err)
	assert.Equal(t, domain.WordUnmastered, w.Status)

	edited := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	example := "an ephemeral trend"
	require.NoError(t, svc.Update(ctx, w.ID, domain.WordPatch{Example: &example}.Touch(edited)))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, example, list[0].Example)
	assert.True(t, list[0].UpdatedAt.Equal(edited))

	require.NoError(t, svc.Delete(ctx, w.ID))
	assert.ErrorIs(t, svc.Delete(ctx, w.ID), common.ErrorNotFound)
}

func TestWordService_InsertValidation(t *testing.T) {
	db, rm := newStore(t)
	svc := NewWordService(db, rm)

	_, err := svc.Insert(t.Context(), domain.WordDraft{Word: ""})
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Insert(t.Context(), domain.WordDraft{Word: "x", Status: "learning"})
	require.ErrorIs(t, err, common.ErrorValidation)
}
