// Package users stores store accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/studydesk/internal/server/models"
)

type Repository interface {
	// Create inserts user; a taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByLogin returns common.ErrorNotFound for unknown usernames.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
