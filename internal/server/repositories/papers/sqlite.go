package papers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/dbx"
	"github.com/dmitrijs2005/studydesk/internal/domain"
)

// jsonTags stores a tag list as a JSON array in a TEXT column.
type jsonTags []string

func (t jsonTags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *jsonTags) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*t = jsonTags{}
		return nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("tags: unsupported type %T", src)
	}
	out := []string{}
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	*t = out
	return nil
}

const sqliteColumns = `id, title, link, note, status, tags, created_at, updated_at`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanSQLite(row dbx.RowScanner) (domain.Paper, error) {
	var (
		p    domain.Paper
		tags jsonTags
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Link, &p.Note, &p.Status, &tags, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Paper{}, err
	}
	p.Tags = []string(tags)
	return p, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Paper, error) {
	query := `SELECT ` + sqliteColumns + ` FROM papers ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	papers, err := dbx.Collect(rows, func(r *sql.Rows) (domain.Paper, error) { return scanSQLite(r) })
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return papers, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Paper, error) {
	query := `SELECT ` + sqliteColumns + ` FROM papers WHERE id = ?`

	p, err := scanSQLite(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, id string, d domain.PaperDraft) (*domain.Paper, error) {
	query :=
		`INSERT INTO papers (id, title, link, note, status, tags)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING ` + sqliteColumns

	p, err := scanSQLite(r.db.QueryRowContext(ctx, query, id, d.Title, d.Link, d.Note, string(d.Status), jsonTags(d.Tags)))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, p domain.PaperPatch) error {
	query :=
		`UPDATE papers SET
		   title = COALESCE(?, title),
		   link = COALESCE(?, link),
		   note = COALESCE(?, note),
		   status = COALESCE(?, status),
		   tags = COALESCE(?, tags),
		   updated_at = COALESCE(?, updated_at)
		 WHERE id = ?`

	var tags any
	if p.Tags != nil {
		tags = jsonTags(*p.Tags)
	}

	res, err := r.db.ExecContext(ctx, query,
		dbx.Nullable(p.Title), dbx.Nullable(p.Link), dbx.Nullable(p.Note),
		dbx.Nullable((*string)(p.Status)), tags, dbx.Nullable(p.UpdatedAt), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM papers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}
