// Package papers declares the store's paper repository and its PostgreSQL
// and SQLite implementations.
package papers

import (
	"context"

	"github.com/dmitrijs2005/studydesk/internal/domain"
)

// Repository persists papers.
type Repository interface {
	// List returns every paper, newest created first.
	List(ctx context.Context) ([]domain.Paper, error)

	// Get returns one paper or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*domain.Paper, error)

	// Insert stores a normalized draft under id and returns the stored row.
	Insert(ctx context.Context, id string, d domain.PaperDraft) (*domain.Paper, error)

	// Update applies the non-nil fields of p. Unknown ids yield
	// common.ErrorNotFound.
	Update(ctx context.Context, id string, p domain.PaperPatch) error

	// Delete removes a paper. Unknown ids yield common.ErrorNotFound.
	Delete(ctx context.Context, id string) error
}
