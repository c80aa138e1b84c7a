package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// WordService validates and persists vocabulary words.
type WordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWordService(db *sql.DB, m repomanager.RepositoryManager) *WordService {
	return &WordService{db: db, repomanager: m}
}

func (s *WordService) List(ctx context.Context) ([]domain.Word, error) {
	return s.repomanager.Words(s.db).List(ctx)
}

func (s *WordService) Insert(ctx context.Context, d domain.WordDraft) (*domain.Word, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return s.repomanager.Words(s.db).Insert(ctx, uuid.NewString(), d)
}

func (s *WordService) Update(ctx context.Context, id string, p domain.WordPatch) error {
	if uuid.Validate(id) != nil {
		return common.ErrorNotFound
	}
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repomanager.Words(s.db).Update(ctx, id, p)
}

func (s *WordService) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return common.ErrorNotFound
	}
	return s.repomanager.Words(s.db).Delete(ctx, id)
}
