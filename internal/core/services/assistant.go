package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/logger"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/render"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// threadTitleLimit caps the auto-generated thread title length.
const threadTitleLimit = 60

// AssistantService drives the AI commentary feature. Replies are broken
// into display sections and, when a thread store is configured, cached
// locally together with the question that produced them.
type AssistantService struct {
	api     driven.AssistantAPI
	threads driven.ThreadStore // optional
}

// NewAssistantService creates a new assistant service.
// The thread store may be nil, in which case nothing is cached.
func NewAssistantService(api driven.AssistantAPI, threads driven.ThreadStore) *AssistantService {
	return &AssistantService{
		api:     api,
		threads: threads,
	}
}

// Ask sends a question and returns the sectioned reply.
// An empty threadID starts a new thread.
func (s *AssistantService) Ask(ctx context.Context, threadID, question string) (*driving.AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question is required: %w", domain.ErrInvalidInput)
	}

	msg, err := s.api.Ask(ctx, threadID, question)
	if err != nil {
		return nil, fmt.Errorf("asking assistant: %w", err)
	}

	s.cacheExchange(ctx, msg, question)

	return &driving.AskResult{
		Message:  msg,
		Sections: render.ParseIntoBlocks(msg.ContentMarkdown),
	}, nil
}

// Summarise requests a document summary. Summaries are one-off and are
// not cached to a thread.
func (s *AssistantService) Summarise(ctx context.Context, documentID string) (*driving.AskResult, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, fmt.Errorf("document id is required: %w", domain.ErrInvalidInput)
	}

	msg, err := s.api.Summarise(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("summarising document: %w", err)
	}

	return &driving.AskResult{
		Message:  msg,
		Sections: render.ParseIntoBlocks(msg.ContentMarkdown),
	}, nil
}

// Threads lists locally cached conversations.
func (s *AssistantService) Threads(ctx context.Context) ([]domain.Thread, error) {
	if s.threads == nil {
		return nil, nil
	}
	return s.threads.ListThreads(ctx)
}

// Thread reopens a cached conversation with its messages.
func (s *AssistantService) Thread(ctx context.Context, id string) (*domain.Thread, error) {
	if s.threads == nil {
		return nil, domain.ErrNotFound
	}
	return s.threads.GetThread(ctx, id)
}

// cacheExchange writes the question and reply to the local thread store.
// Cache failures are logged, never surfaced: the reply already exists.
func (s *AssistantService) cacheExchange(ctx context.Context, reply *domain.AssistantMessage, question string) {
	if s.threads == nil || reply == nil || reply.ThreadID == "" {
		return
	}

	// Title the thread after its first question; follow-ups keep it.
	if _, err := s.threads.GetThread(ctx, reply.ThreadID); errors.Is(err, domain.ErrNotFound) {
		if err := s.threads.SaveThread(ctx, &domain.Thread{
			ID:    reply.ThreadID,
			Title: threadTitle(question),
		}); err != nil {
			logger.Warn("Failed to cache thread %s: %v", reply.ThreadID, err)
			return
		}
	}

	userMsg := &domain.AssistantMessage{
		ID:              uuid.NewString(),
		ThreadID:        reply.ThreadID,
		Role:            domain.RoleUser,
		ContentMarkdown: question,
		CreatedAt:       reply.CreatedAt.Add(-time.Millisecond),
	}
	if err := s.threads.AppendMessage(ctx, reply.ThreadID, userMsg); err != nil {
		logger.Warn("Failed to cache question on thread %s: %v", reply.ThreadID, err)
	}
	if err := s.threads.AppendMessage(ctx, reply.ThreadID, reply); err != nil {
		logger.Warn("Failed to cache reply on thread %s: %v", reply.ThreadID, err)
	}
}

// threadTitle derives a short thread title from the first question.
func threadTitle(question string) string {
	title := strings.Join(strings.Fields(question), " ")
	if len(title) > threadTitleLimit {
		title = strings.TrimSpace(title[:threadTitleLimit]) + "…"
	}
	return title
}
