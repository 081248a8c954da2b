package tui

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("tui: assistant service is required")

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("tui: session service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
