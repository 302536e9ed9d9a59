package notes

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

// MemoryStore keeps notes in process memory, in creation order.
type MemoryStore struct {
	mu    sync.RWMutex
	notes []models.Note
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(ctx context.Context, n *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, *n)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			n := s.notes[i]
			return &n, nil
		}
	}
	return nil, common.ErrNoteNotFound
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

func (s *MemoryStore) Update(ctx context.Context, n *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == n.ID {
			s.notes[i] = *n
			return nil
		}
	}
	return common.ErrNoteNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return common.ErrNoteNotFound
}
