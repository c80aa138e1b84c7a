package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/dbx"
	"github.com/dmitrijs2005/studydesk/internal/server/models"
)

// placeholders differ between dialects; everything else is shared.
type queries struct {
	create, find, delete string
}

var postgresQueries = queries{
	create: `INSERT INTO refresh_tokens (user_id, token, expires_at)
		 VALUES ($1, $2, $3)`,
	find:   `SELECT user_id, expires_at FROM refresh_tokens WHERE token = $1`,
	delete: `DELETE FROM refresh_tokens WHERE token = $1`,
}

var sqliteQueries = queries{
	create: `INSERT INTO refresh_tokens (user_id, token, expires_at)
		 VALUES (?, ?, ?)`,
	find:   `SELECT user_id, expires_at FROM refresh_tokens WHERE token = ?`,
	delete: `DELETE FROM refresh_tokens WHERE token = ?`,
}

type SQLRepository struct {
	db dbx.DBTX
	q  queries
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: postgresQueries}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: sqliteQueries}
}

func (r *SQLRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	_, err := r.db.ExecContext(ctx, r.q.create, userID, token, time.Now().UTC().Add(validity))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	t := &models.RefreshToken{Token: token}
	err := r.db.QueryRowContext(ctx, r.q.find, token).Scan(&t.UserID, &t.Expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *SQLRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, r.q.delete, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
