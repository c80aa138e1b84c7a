package papers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/dbx"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/lib/pq"
)

// tags travel as text and are cast to text[] server side, so pq.StringArray
// only has to deal with the array literal format.
const pgColumns = `id, title, link, note, status, tags::text, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanPostgres(row dbx.RowScanner) (domain.Paper, error) {
	var (
		p    domain.Paper
		tags pq.StringArray
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Link, &p.Note, &p.Status, &tags, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Paper{}, err
	}
	p.Tags = append([]string{}, tags...)
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Paper, error) {
	query := `SELECT ` + pgColumns + ` FROM papers ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	papers, err := dbx.Collect(rows, func(r *sql.Rows) (domain.Paper, error) { return scanPostgres(r) })
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return papers, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*domain.Paper, error) {
	query := `SELECT ` + pgColumns + ` FROM papers WHERE id = $1`

	p, err := scanPostgres(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, id string, d domain.PaperDraft) (*domain.Paper, error) {
	query :=
		`INSERT INTO papers (id, title, link, note, status, tags)
		 VALUES ($1, $2, $3, $4, $5, $6::text::text[])
		 RETURNING ` + pgColumns

	tags := pq.StringArray(append([]string{}, d.Tags...))
	p, err := scanPostgres(r.db.QueryRowContext(ctx, query, id, d.Title, d.Link, d.Note, string(d.Status), tags))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, p domain.PaperPatch) error {
	query :=
		`UPDATE papers SET
		   title = COALESCE($2, title),
		   link = COALESCE($3, link),
		   note = COALESCE($4, note),
		   status = COALESCE($5, status),
		   tags = COALESCE($6::text::text[], tags),
		   updated_at = COALESCE($7, updated_at)
		 WHERE id = $1`

	var tags any
	if p.Tags != nil {
		tags = pq.StringArray(append([]string{}, *p.Tags...))
	}

	res, err := r.db.ExecContext(ctx, query, id,
		dbx.Nullable(p.Title), dbx.Nullable(p.Link), dbx.Nullable(p.Note),
		dbx.Nullable((*string)(p.Status)), tags, dbx.Nullable(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM papers WHERE id = $1`, id)
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
