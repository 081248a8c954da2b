// Package services implements the driving port interfaces.
// Services validate input, orchestrate calls to the driven ports
// (backend API, session store, thread cache) and shape replies for
// the CLI and TUI surfaces.
package services
