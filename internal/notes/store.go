package notes

import (
	"context"

	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/models"
)

// Store is the note persistence contract. Get on an absent id returns
// common.ErrNoteNotFound.
type Store interface {
	Create(ctx context.Context, n *models.Note) error
	Get(ctx context.Context, id uuid.UUID) (*models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	Update(ctx context.Context, n *models.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}
