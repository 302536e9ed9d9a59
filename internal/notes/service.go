package notes

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/cache"
	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

// notesCacheKey holds the full unfiltered note set. Visibility filtering is
// per-caller, so it always happens after the cache, never inside it.
const notesCacheKey = "notes:all"

// Service owns note CRUD and the visibility policy. The cache is optional;
// every cache failure degrades to the store.
type Service struct {
	store Store
	cache *cache.Cache
	ttl   time.Duration
}

func NewService(store Store, c *cache.Cache, ttl time.Duration) *Service {
	return &Service{store: store, cache: c, ttl: ttl}
}

type CreateRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsPrivate bool   `json:"is_private"`
}

// Create stores a note owned by the calling user.
func (s *Service) Create(ctx context.Context, user *models.User, req CreateRequest) (*models.Note, error) {
	note := &models.Note{
		ID:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Owner:     user.Username,
		IsPrivate: req.IsPrivate,
	}
	if err := s.store.Create(ctx, note); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return note, nil
}

// ListVisible returns every note the user may read: all public notes, the
// user's own notes, and everything when the user is an admin.
func (s *Service) ListVisible(ctx context.Context, user *models.User) ([]models.Note, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]models.Note, 0, len(all))
	for _, n := range all {
		if n.VisibleTo(user) {
			visible = append(visible, n)
		}
	}
	return visible, nil
}

// Update applies a partial patch. Existence is checked before permission, so
// a nonexistent id is 404 even for callers who could not have touched it.
func (s *Service) Update(ctx context.Context, user *models.User, id uuid.UUID, patch models.NoteUpdate) (*models.Note, error) {
	note, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(note, user) {
		return nil, common.ErrForbidden
	}
	patch.Apply(note)
	if err := s.store.Update(ctx, note); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return note, nil
}

// Delete removes the note and returns the removed record. Same ordering as
// Update: existence first, then permission.
func (s *Service) Delete(ctx context.Context, user *models.User, id uuid.UUID) (*models.Note, error) {
	note, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(note, user) {
		return nil, common.ErrForbidden
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return note, nil
}

// Only the owner or an admin may mutate a note.
func canModify(n *models.Note, u *models.User) bool {
	return n.Owner == u.Username || u.IsAdmin()
}

func (s *Service) list(ctx context.Context) ([]models.Note, error) {
	if s.cache != nil {
		var cached []models.Note
		err := s.cache.Get(ctx, notesCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("notes cache read failed", "error", err)
		}
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, notesCacheKey, all, s.ttl); err != nil {
			slog.Warn("notes cache write failed", "error", err)
		}
	}
	return all, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, notesCacheKey); err != nil {
		slog.Warn("notes cache invalidation failed", "error", err)
	}
}
