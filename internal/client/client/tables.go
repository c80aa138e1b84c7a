package client

import (
	"context"

	"github.com/dmitrijs2005/studydesk/internal/domain"
)

// PaperTable is the papers table seen through a GRPCClient.
type PaperTable struct{ c *GRPCClient }

func Papers(c *GRPCClient) *PaperTable { return &PaperTable{c: c} }

func (t *PaperTable) List(ctx context.Context) ([]domain.Paper, error) { return t.c.ListPapers(ctx) }

func (t *PaperTable) Insert(ctx context.Context, d domain.PaperDraft) (domain.Paper, error) {
	return t.c.InsertPaper(ctx, d)
}

func (t *PaperTable) Update(ctx context.Context, id string, p domain.PaperPatch) error {
	return t.c.UpdatePaper(ctx, id, p)
}

func (t *PaperTable) Delete(ctx context.Context, id string) error { return t.c.DeletePaper(ctx, id) }

// WordTable is the words table seen through a GRPCClient.
type WordTable struct{ c *GRPCClient }

func Words(c *GRPCClient) *WordTable { return &WordTable{c: c} }

func (t *WordTable) List(ctx context.Context) ([]domain.Word, error) { return t.c.ListWords(ctx) }

func (t *WordTable) Insert(ctx context.Context, d domain.WordDraft) (domain.Word, error) {
	return t.c.InsertWord(ctx, d)
}

func (t *WordTable) Update(ctx context.Context, id string, p domain.WordPatch) error {
	return t.c.UpdateWord(ctx, id, p)
}

func (t *WordTable) Delete(ctx context.Context, id string) error { return t.c.DeleteWord(ctx, id) }
