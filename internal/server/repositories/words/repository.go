// Package words declares the store's vocabulary repository.
package words

import (
	"context"

	"github.com/dmitrijs2005/studydesk/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Word, error)
	Get(ctx context.Context, id string) (*domain.Word, error)
	Insert(ctx context.Context, id string, d domain.WordDraft) (*domain.Word, error)
	Update(ctx context.Context, id string, p domain.WordPatch) error
	Delete(ctx context.Context, id string) error
}
