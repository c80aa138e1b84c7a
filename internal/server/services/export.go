package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/dbx"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/dmitrijs2005/studydesk/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Snapshot is the JSON document written by Export.
type Snapshot struct {
	ExportedAt time.Time      `json:"exported_at"`
	Papers     []domain.Paper `json:"papers"`
	Words      []domain.Word  `json:"words"`
}

// ExportResult describes a written snapshot.
type ExportResult struct {
	Key       string
	URL       string
	Papers    int
	Words     int
	ExpiresAt time.Time
}

// ExportService dumps both tables to object storage and hands out a
// presigned download link.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       ObjectStore
	urlTTL      time.Duration
	now         func() time.Time
}

// NewExportService returns a service that fails every Export with
// common.ErrExportDisabled when store is nil.
func NewExportService(db *sql.DB, m repomanager.RepositoryManager, store ObjectStore, urlTTL time.Duration) *ExportService {
	return &ExportService{db: db, repomanager: m, store: store, urlTTL: urlTTL, now: time.Now}
}

func (s *ExportService) Export(ctx context.Context) (*ExportResult, error) {
	if s.store == nil {
		return nil, common.ErrExportDisabled
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := exportKey(snap.ExportedAt)
	if err := s.store.Put(ctx, key, body, "application/json"); err != nil {
		return nil, err
	}

	url, err := s.store.PresignGet(ctx, key, s.urlTTL)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Key:       key,
		URL:       url,
		Papers:    len(snap.Papers),
		Words:     len(snap.Words),
		ExpiresAt: snap.ExportedAt.Add(s.urlTTL),
	}, nil
}

// snapshot reads both tables inside one transaction so the export is
// consistent on backends that support snapshot isolation.
func (s *ExportService) snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: s.now().UTC()}
	err := dbx.WithTx(ctx, s.db, s.repomanager.SnapshotTxOptions(), func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if snap.Papers, err = s.repomanager.Papers(tx).List(ctx); err != nil {
			return err
		}
		snap.Words, err = s.repomanager.Words(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return snap, nil
}

func exportKey(at time.Time) string {
	return fmt.Sprintf("exports/%04d/%02d/%02d/%s.json", at.Year(), at.Month(), at.Day(), uuid.NewString())
}
