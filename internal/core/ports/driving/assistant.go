package driving

import (
	"context"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// AskResult is an assistant reply together with its rendered sections.
type AskResult struct {
	Message  *domain.AssistantMessage
	Sections []domain.Section
}

// AssistantService drives the AI commentary feature.
// Replies are cached to the local thread store when one is configured.
type AssistantService interface {
	// Ask sends a question and returns the sectioned reply.
	// An empty threadID starts a new thread.
	Ask(ctx context.Context, threadID, question string) (*AskResult, error)

	// Summarise requests a document summary.
	Summarise(ctx context.Context, documentID string) (*AskResult, error)

	// Threads lists locally cached conversations.
	Threads(ctx context.Context) ([]domain.Thread, error)

	// Thread reopens a cached conversation with its messages.
	Thread(ctx context.Context, id string) (*domain.Thread, error)
}
