// Package memory provides in-memory implementations of driven storage
// ports. The thread store here backs the assistant when the on-disk
// SQLite cache cannot be opened; contents last for the process only.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
)

// Ensure ThreadStore implements the interface.
var _ driven.ThreadStore = (*ThreadStore)(nil)

// ThreadStore is an in-memory implementation of driven.ThreadStore.
type ThreadStore struct {
	mu       sync.RWMutex
	threads  map[string]domain.Thread
	messages map[string][]domain.AssistantMessage
}

// NewThreadStore creates a new in-memory thread store.
func NewThreadStore() *ThreadStore {
	return &ThreadStore{
		threads:  make(map[string]domain.Thread),
		messages: make(map[string][]domain.AssistantMessage),
	}
}

// SaveThread stores or updates a thread's metadata.
func (s *ThreadStore) SaveThread(_ context.Context, thread *domain.Thread) error {
	if thread == nil || thread.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *thread
	stored.Messages = nil
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if existing, ok := s.threads[thread.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = now
	}
	s.threads[thread.ID] = stored
	return nil
}

// GetThread retrieves a thread with its messages in creation order.
func (s *ThreadStore) GetThread(_ context.Context, id string) (*domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, ok := s.threads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	thread.Messages = append([]domain.AssistantMessage(nil), s.messages[id]...)
	return &thread, nil
}

// ListThreads returns all threads, most recently updated first.
func (s *ThreadStore) ListThreads(_ context.Context) ([]domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	threads := make([]domain.Thread, 0, len(s.threads))
	for _, thread := range s.threads {
		threads = append(threads, thread)
	}
	sort.Slice(threads, func(i, j int) bool {
		return threads[i].UpdatedAt.After(threads[j].UpdatedAt)
	})
	return threads, nil
}

// AppendMessage adds a message to a thread and bumps its updated time.
func (s *ThreadStore) AppendMessage(_ context.Context, threadID string, msg *domain.AssistantMessage) error {
	if threadID == "" || msg == nil || msg.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	thread, ok := s.threads[threadID]
	if !ok {
		thread = domain.Thread{ID: threadID, CreatedAt: now}
	}
	thread.UpdatedAt = now
	s.threads[threadID] = thread

	stored := *msg
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	s.messages[threadID] = append(s.messages[threadID], stored)
	return nil
}

// DeleteThread removes a thread and its messages.
func (s *ThreadStore) DeleteThread(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.threads, id)
	delete(s.messages, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *ThreadStore) Close() error {
	return nil
}
