// Package services holds the store's business logic: paper and word CRUD,
// accounts and tokens, and snapshot export to object storage.
package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// PaperService validates and persists papers.
type PaperService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPaperService(db *sql.DB, m repomanager.RepositoryManager) *PaperService {
	return &PaperService{db: db, repomanager: m}
}

// List returns every paper, newest created first.
func (s *PaperService) List(ctx context.Context) ([]domain.Paper, error) {
	return s.repomanager.Papers(s.db).List(ctx)
}

// Insert normalizes and validates d, assigns an id and stores it.
func (s *PaperService) Insert(ctx context.Context, d domain.PaperDraft) (*domain.Paper, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return s.repomanager.Papers(s.db).Insert(ctx, uuid.NewString(), d)
}

// Update applies p to the paper with the given id.
func (s *PaperService) Update(ctx context.Context, id string, p domain.PaperPatch) error {
	if uuid.Validate(id) != nil {
		return common.ErrorNotFound
	}
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repomanager.Papers(s.db).Update(ctx, id, p)
}

func (s *PaperService) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return common.ErrorNotFound
	}
	return s.repomanager.Papers(s.db).Delete(ctx, id)
}
