package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/models"
)

// LogStore persists request log entries. List with limit <= 0 returns the
// whole log; a negative offset reads as zero.
type LogStore interface {
	Insert(ctx context.Context, e *models.LogEntry) error
	List(ctx context.Context, limit, offset int) ([]models.LogEntry, error)
}

// Service records one entry per handled request and serves the admin log
// view. Recording is best-effort: a failed write warns and moves on, it
// never alters the response already sent.
type Service struct {
	store LogStore
}

func NewService(store LogStore) *Service {
	return &Service{store: store}
}

// Record stamps the entry with receivedAt, the request receipt instant, not
// the moment of the write.
func (s *Service) Record(ctx context.Context, receivedAt time.Time, username *string, endpoint, method string, status int) {
	entry := &models.LogEntry{
		ID:         uuid.New(),
		Timestamp:  receivedAt.UTC(),
		Username:   username,
		Endpoint:   endpoint,
		Method:     method,
		StatusCode: status,
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		slog.Warn("audit log write failed",
			"endpoint", endpoint, "method", method, "error", err)
	}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]models.LogEntry, error) {
	return s.store.List(ctx, limit, offset)
}
