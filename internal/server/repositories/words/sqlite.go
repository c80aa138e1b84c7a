package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/dbx"
	"github.com/dmitrijs2005/studydesk/internal/domain"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Word, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM words ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	words, err := dbx.Collect(rows, func(r *sql.Rows) (domain.Word, error) { return scanWord(r) })
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return words, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Word, error) {
	w, err := scanWord(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM words WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &w, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, id string, d domain.WordDraft) (*domain.Word, error) {
	query :=
		`INSERT INTO words (id, word, definition, example, status)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING ` + columns

	w, err := scanWord(r.db.QueryRowContext(ctx, query, id, d.Word, d.Definition, d.Example, string(d.Status)))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &w, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, p domain.WordPatch) error {
	query :=
		`UPDATE words SET
		   word = COALESCE(?, word),
		   definition = COALESCE(?, definition),
		   example = COALESCE(?, example),
		   status = COALESCE(?, status),
		   updated_at = COALESCE(?, updated_at)
		 WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		dbx.Nullable(p.Word), dbx.Nullable(p.Definition), dbx.Nullable(p.Example),
		dbx.Nullable((*string)(p.Status)), dbx.Nullable(p.UpdatedAt), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}
