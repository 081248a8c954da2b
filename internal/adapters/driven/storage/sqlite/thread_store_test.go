package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "threads.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same database must not re-run applied migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestThreadStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	thread := &domain.Thread{
		ID:        "thread-1",
		Title:     "Land registration precedent",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, threads.SaveThread(ctx, thread))

	got, err := threads.GetThread(ctx, "thread-1")
	require.NoError(t, err)
	assert.Equal(t, "thread-1", got.ID)
	assert.Equal(t, "Land registration precedent", got.Title)
	assert.Empty(t, got.Messages)
}

func TestThreadStore_SaveThread_Upserts(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()
	ctx := context.Background()

	thread := &domain.Thread{ID: "thread-1", Title: "First title"}
	require.NoError(t, threads.SaveThread(ctx, thread))

	thread.Title = "Renamed"
	require.NoError(t, threads.SaveThread(ctx, thread))

	got, err := threads.GetThread(ctx, "thread-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestThreadStore_SaveThread_InvalidInput(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()
	ctx := context.Background()

	assert.ErrorIs(t, threads.SaveThread(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, threads.SaveThread(ctx, &domain.Thread{}), domain.ErrInvalidInput)
}

func TestThreadStore_GetThread_NotFound(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()

	_, err := threads.GetThread(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestThreadStore_AppendMessage_OrderAndSources(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, threads.SaveThread(ctx, &domain.Thread{ID: "thread-1", Title: "Q&A"}))

	question := &domain.AssistantMessage{
		ID:              "msg-1",
		Role:            domain.RoleUser,
		ContentMarkdown: "What does the Land Act say about leases?",
		CreatedAt:       base,
	}
	answer := &domain.AssistantMessage{
		ID:              "msg-2",
		Role:            domain.RoleAssistant,
		ContentMarkdown: "## Overview\nLeases are governed by...",
		Sources: []domain.SourceRef{
			{Title: "Land Act", Citation: "Cap 280 s.56", LinkURL: "https://example.test/land-act"},
		},
		CreatedAt: base.Add(time.Second),
	}
	require.NoError(t, threads.AppendMessage(ctx, "thread-1", question))
	require.NoError(t, threads.AppendMessage(ctx, "thread-1", answer))

	got, err := threads.GetThread(ctx, "thread-1")
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "msg-1", got.Messages[0].ID)
	assert.Equal(t, domain.RoleUser, got.Messages[0].Role)
	assert.Empty(t, got.Messages[0].Sources)
	assert.Equal(t, "msg-2", got.Messages[1].ID)
	require.Len(t, got.Messages[1].Sources, 1)
	assert.Equal(t, "Cap 280 s.56", got.Messages[1].Sources[0].Citation)
}

func TestThreadStore_AppendMessage_CreatesThreadRow(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()
	ctx := context.Background()

	// The backend can hand back a thread id before the client ever saved
	// thread metadata.
	msg := &domain.AssistantMessage{
		ID:              "msg-1",
		Role:            domain.RoleAssistant,
		ContentMarkdown: "Answer text",
	}
	require.NoError(t, threads.AppendMessage(ctx, "server-thread", msg))

	got, err := threads.GetThread(ctx, "server-thread")
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "Answer text", got.Messages[0].ContentMarkdown)
}

func TestThreadStore_AppendMessage_InvalidInput(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()
	ctx := context.Background()

	assert.ErrorIs(t, threads.AppendMessage(ctx, "", &domain.AssistantMessage{ID: "m"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, threads.AppendMessage(ctx, "t", nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, threads.AppendMessage(ctx, "t", &domain.AssistantMessage{}), domain.ErrInvalidInput)
}

func TestThreadStore_ListThreads_MostRecentFirst(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, threads.SaveThread(ctx, &domain.Thread{
		ID: "old", Title: "Old", CreatedAt: base.Add(-2 * time.Hour), UpdatedAt: base.Add(-2 * time.Hour),
	}))
	require.NoError(t, threads.SaveThread(ctx, &domain.Thread{
		ID: "new", Title: "New", CreatedAt: base, UpdatedAt: base,
	}))

	list, err := threads.ListThreads(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
	assert.Empty(t, list[0].Messages)
}

func TestThreadStore_DeleteThread_RemovesMessages(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()
	ctx := context.Background()

	require.NoError(t, threads.SaveThread(ctx, &domain.Thread{ID: "thread-1", Title: "Doomed"}))
	require.NoError(t, threads.AppendMessage(ctx, "thread-1", &domain.AssistantMessage{
		ID: "msg-1", Role: domain.RoleUser, ContentMarkdown: "hello",
	}))

	require.NoError(t, threads.DeleteThread(ctx, "thread-1"))

	_, err := threads.GetThread(ctx, "thread-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&count))
	assert.Zero(t, count, "cascade delete should remove messages")
}

func TestThreadStore_DeleteThread_MissingIsNoop(t *testing.T) {
	store := setupTestStore(t)
	threads := store.ThreadStore()

	assert.NoError(t, threads.DeleteThread(context.Background(), "missing"))
}
