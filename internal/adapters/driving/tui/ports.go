// Package tui provides an interactive terminal user interface for lawadmin.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant drives the AI research assistant.
	Assistant driving.AssistantService

	// Session reports the signed-in session state.
	Session driving.SessionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(assistant driving.AssistantService, session driving.SessionService) *Ports {
	return &Ports{
		Assistant: assistant,
		Session:   session,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	return nil
}
