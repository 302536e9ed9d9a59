package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/models"
)

// Store is the user persistence contract. Lookups that match nothing return
// common.ErrUserNotFound rather than a nil user.
type Store interface {
	Create(ctx context.Context, u *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByAPIKey(ctx context.Context, key string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, username string) error
}
