package services

import (
	"testing"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperService_Lifecycle(t *testing.T) {
	db, rm := newStore(t)
	svc := NewPaperService(db, rm)
	ctx := t.Context()

	p, err := svc.Insert(ctx, domain.PaperDraft{Title: "  Attention Is All You Need ", Tags: []string{"ml", " ", "nlp"}})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Attention Is All You Need", p.Title)
	assert.Equal(t, domain.PaperUnread, p.Status)
	assert.Equal(t, []string{"ml", "nlp"}, p.Tags)

	require.NoError(t, svc.Update(ctx, p.ID, p.TogglePatch()))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.PaperRead, list[0].Status)

	require.NoError(t, svc.Delete(ctx, p.ID))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPaperService_InsertRejectsBlankTitle(t *testing.T) {
	db, rm := newStore(t)
	svc := NewPaperService(db, rm)

	_, err := svc.Insert(t.Context(), domain.PaperDraft{Title: "   "})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestPaperService_UnknownID(t *testing.T) {
	db, rm := newStore(t)
	svc := NewPaperService(db, rm)
	ctx := t.Context()
	title := "x"

	for _, id := range []string{"not-a-uuid", "7b0d3c3e-5d7e-4a43-9a55-0d0cf1c1f0aa"} {
		assert.ErrorIs(t, svc.Update(ctx, id, domain.PaperPatch{Title: &title}), common.ErrorNotFound, id)
		assert.ErrorIs(t, svc.Delete(ctx, id), common.ErrorNotFound, id)
	}
}

func TestPaperService_UpdateRejectsEmptyPatch(t *testing.T) {
	db, rm := newStore(t)
	svc := NewPaperService(db, rm)
	ctx := t.Context()

	p, err := svc.Insert(ctx, domain.PaperDraft{Title: "t"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Update(ctx, p.ID, domain.PaperPatch{}), common.ErrorValidation)
}
