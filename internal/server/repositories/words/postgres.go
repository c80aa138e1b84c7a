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

const columns = `id, word, definition, example, status, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanWord(row dbx.RowScanner) (domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.Word, &w.Definition, &w.Example, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Word, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM words ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	words, err := dbx.Collect(rows, func(r *sql.Rows) (domain.Word, error) { return scanWord(r) })
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return words, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*domain.Word, error) {
	w, err := scanWord(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM words WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &w, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, id string, d domain.WordDraft) (*domain.Word, error) {
	query :=
		`INSERT INTO words (id, word, definition, example, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + columns

	w, err := scanWord(r.db.QueryRowContext(ctx, query, id, d.Word, d.Definition, d.Example, string(d.Status)))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &w, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, p domain.WordPatch) error {
	query :=
		`UPDATE words SET
		   word = COALESCE($2, word),
		   definition = COALESCE($3, definition),
		   example = COALESCE($4, example),
		   status = COALESCE($5, status),
		   updated_at = COALESCE($6, updated_at)
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id,
		dbx.Nullable(p.Word), dbx.Nullable(p.Definition), dbx.Nullable(p.Example),
		dbx.Nullable((*string)(p.Status)), dbx.Nullable(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
