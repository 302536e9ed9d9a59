package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteshq/notesapi/internal/audit"
)

func recordedEntries(t *testing.T, store *audit.MemoryLogStore) []lastEntry {
	t.Helper()
	entries, err := store.List(context.Background(), 0, 0)
	require.NoError(t, err)
	out := make([]lastEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, lastEntry{e.Username, e.Endpoint, e.Method, e.StatusCode})
	}
	return out
}

type lastEntry struct {
	username *string
	endpoint string
	method   string
	status   int
}

func TestRequestLogRecordsStatus(t *testing.T) {
	t.Parallel()
	store := audit.NewMemoryLogStore()
	mw := NewRequestLog(audit.NewService(store))

	h := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("DELETE", "/notes/xyz", nil))

	entries := recordedEntries(t, store)
	require.Len(t, entries, 1)
	assert.Equal(t, "/notes/xyz", entries[0].endpoint)
	assert.Equal(t, "DELETE", entries[0].method)
	assert.Equal(t, http.StatusTeapot, entries[0].status)
	assert.Nil(t, entries[0].username)
}

func TestRequestLogDefaultsTo200(t *testing.T) {
	t.Parallel()
	store := audit.NewMemoryLogStore()
	mw := NewRequestLog(audit.NewService(store))

	// A handler that writes nothing still counts as a 200.
	h := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	entries := recordedEntries(t, store)
	require.Len(t, entries, 1)
	assert.Equal(t, http.StatusOK, entries[0].status)
}

func TestRequestLogStampsReceiptTime(t *testing.T) {
	t.Parallel()
	store := audit.NewMemoryLogStore()
	mw := NewRequestLog(audit.NewService(store))

	h := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(30 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/token", nil))
	finished := time.Now()

	entries, err := store.List(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// The stamp is the arrival instant, so the handler's whole runtime sits
	// between it and completion.
	assert.GreaterOrEqual(t, finished.Sub(entries[0].Timestamp), 30*time.Millisecond)
}

func TestRequestLogCapturesResolvedUser(t *testing.T) {
	t.Parallel()
	store := audit.NewMemoryLogStore()
	mw := NewRequestLog(audit.NewService(store))

	// Downstream middleware fills the slot the way auth does.
	h := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		audit.SetUsername(r.Context(), "alice")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/notes", nil))

	entries := recordedEntries(t, store)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].username)
	assert.Equal(t, "alice", *entries[0].username)
}
