package driven

import (
	"context"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// ThreadStore caches assistant conversation threads locally so past
// conversations can be reopened without a network round trip.
type ThreadStore interface {
	// SaveThread creates or updates a thread (metadata only, not messages).
	SaveThread(ctx context.Context, thread *domain.Thread) error

	// GetThread retrieves a thread with its messages in creation order.
	// Returns domain.ErrNotFound if the thread does not exist.
	GetThread(ctx context.Context, id string) (*domain.Thread, error)

	// ListThreads returns all cached threads, most recently updated first,
	// without their messages.
	ListThreads(ctx context.Context) ([]domain.Thread, error)

	// AppendMessage adds a message to a thread and bumps its updated time.
	AppendMessage(ctx context.Context, threadID string, msg *domain.AssistantMessage) error

	// DeleteThread removes a thread and its messages.
	DeleteThread(ctx context.Context, id string) error

	// Close releases the underlying storage.
	Close() error
}
