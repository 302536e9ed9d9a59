package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteshq/notesapi/internal/models"
)

func TestRecord(t *testing.T) {
	t.Parallel()
	store := NewMemoryLogStore()
	svc := NewService(store)
	ctx := context.Background()

	received := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	alice := "alice"
	svc.Record(ctx, received, &alice, "/notes", "POST", 200)
	svc.Record(ctx, received.Add(time.Second), nil, "/token", "POST", 401)

	entries, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	require.NotNil(t, first.Username)
	assert.Equal(t, "alice", *first.Username)
	assert.Equal(t, "/notes", first.Endpoint)
	assert.Equal(t, "POST", first.Method)
	assert.Equal(t, 200, first.StatusCode)

	// The entry keeps the receipt instant handed in, not the write time.
	assert.True(t, first.Timestamp.Equal(received))

	// Requests that never resolved an identity log a null username.
	assert.Nil(t, entries[1].Username)
	assert.Equal(t, 401, entries[1].StatusCode)
}

type failingLogStore struct{}

func (failingLogStore) Insert(ctx context.Context, e *models.LogEntry) error {
	return errors.New("disk on fire")
}

func (failingLogStore) List(ctx context.Context, limit, offset int) ([]models.LogEntry, error) {
	return nil, errors.New("disk on fire")
}

func TestRecordStoreFailure(t *testing.T) {
	t.Parallel()
	svc := NewService(failingLogStore{})

	// Recording is best-effort; a broken store must not panic or block.
	svc.Record(context.Background(), time.Now(), nil, "/notes", "GET", 200)
}

func TestListPagination(t *testing.T) {
	t.Parallel()
	store := NewMemoryLogStore()
	svc := NewService(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		svc.Record(ctx, time.Now(), nil, fmt.Sprintf("/n%d", i), "GET", 200)
	}

	page, err := svc.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "/n0", page[0].Endpoint)
	assert.Equal(t, "/n1", page[1].Endpoint)

	page, err = svc.List(ctx, 2, 3)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "/n3", page[0].Endpoint)

	// Offset past the end yields nothing.
	page, err = svc.List(ctx, 2, 99)
	require.NoError(t, err)
	assert.Empty(t, page)

	// Zero limit means everything.
	page, err = svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page, 5)

	// Negative paging values read as zero rather than slicing out of range.
	page, err = svc.List(ctx, 1, -1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "/n0", page[0].Endpoint)

	page, err = svc.List(ctx, -3, -3)
	require.NoError(t, err)
	assert.Len(t, page, 5)
}

func TestUsernameHolder(t *testing.T) {
	t.Parallel()

	ctx := WithHolder(context.Background())
	assert.True(t, HasHolder(ctx))
	assert.Nil(t, Username(ctx))

	SetUsername(ctx, "alice")
	got := Username(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "alice", *got)

	// Without a holder installed the helpers are no-ops.
	bare := context.Background()
	assert.False(t, HasHolder(bare))
	SetUsername(bare, "bob")
	assert.Nil(t, Username(bare))
}
