package users

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

// MemoryStore keeps users in process memory, in registration order. It backs
// the server when no database is configured, and the tests.
type MemoryStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return common.ErrUserExists
		}
	}
	s.users = append(s.users, *u)
	return nil
}

func (s *MemoryStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(func(u *models.User) bool { return u.Username == username })
}

func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(func(u *models.User) bool { return u.ID == id })
}

func (s *MemoryStore) GetByAPIKey(ctx context.Context, key string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(func(u *models.User) bool { return u.APIKey != nil && *u.APIKey == key })
}

func (s *MemoryStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) Update(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = *u
			return nil
		}
	}
	return common.ErrUserNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == username {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return common.ErrUserNotFound
}

// find returns a copy so callers never alias store memory.
func (s *MemoryStore) find(match func(*models.User) bool) (*models.User, error) {
	for i := range s.users {
		if match(&s.users[i]) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrUserNotFound
}
