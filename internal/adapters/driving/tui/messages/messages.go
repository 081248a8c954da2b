// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
)

// AskRequested is a command to send a question to the assistant.
type AskRequested struct {
	ThreadID string
	Question string
}

// AskCompleted carries the assistant reply back to the model.
type AskCompleted struct {
	Result *driving.AskResult
	Err    error
}

// RevealFrame carries one typewriter frame of the reply being revealed.
type RevealFrame struct {
	Text string
}

// RevealDone is sent when the typewriter reveal has finished or was cancelled.
type RevealDone struct{}

// ThreadsLoaded carries the cached thread list back to the model.
type ThreadsLoaded struct {
	Threads []domain.Thread
	Err     error
}

// ThreadLoaded carries a single cached conversation back to the model.
type ThreadLoaded struct {
	Thread *domain.Thread
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred reports an error to the active view.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewAsk is the question input and reply view.
	ViewAsk ViewType = iota
	// ViewThreads lists cached conversations.
	ViewThreads
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewAsk:
		return "ask"
	case ViewThreads:
		return "threads"
	default:
		return "unknown"
	}
}
