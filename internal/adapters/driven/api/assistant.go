package api

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// messageResponse is the wire shape of an assistant reply.
type messageResponse struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	Content  string `json:"content"`
	Sources  []struct {
		Title    string `json:"title"`
		Citation string `json:"citation"`
		LinkURL  string `json:"link_url"`
	} `json:"sources"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *messageResponse) toDomain() *domain.AssistantMessage {
	msg := &domain.AssistantMessage{
		ID:              r.ID,
		ThreadID:        r.ThreadID,
		Role:            domain.RoleAssistant,
		ContentMarkdown: r.Content,
		CreatedAt:       r.CreatedAt,
	}
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	for _, s := range r.Sources {
		msg.Sources = append(msg.Sources, domain.SourceRef{
			Title:    s.Title,
			Citation: s.Citation,
			LinkURL:  s.LinkURL,
		})
	}
	return msg
}

// Ask sends a question on a thread. An empty threadID starts a new
// thread; the backend's assigned thread ID comes back on the message.
func (c *Client) Ask(ctx context.Context, threadID, question string) (*domain.AssistantMessage, error) {
	if question == "" {
		return nil, domain.ErrInvalidInput
	}

	body := map[string]any{"question": question}
	if threadID != "" {
		body["thread_id"] = threadID
	}

	var resp messageResponse
	if err := c.postJSON(ctx, "/ai/commentary", body, &resp); err != nil {
		return nil, fmt.Errorf("ask: %w", err)
	}
	return resp.toDomain(), nil
}

// Summarise requests a summary of a document.
func (c *Client) Summarise(ctx context.Context, documentID string) (*domain.AssistantMessage, error) {
	if documentID == "" {
		return nil, domain.ErrInvalidInput
	}

	var resp messageResponse
	if err := c.postJSON(ctx, "/ai/summary", map[string]any{"document_id": documentID}, &resp); err != nil {
		return nil, fmt.Errorf("summarise: %w", err)
	}
	return resp.toDomain(), nil
}
