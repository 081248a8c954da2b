// Package driving defines the interfaces that external actors use to
// drive the application: the CLI and TUI adapters call these.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
package driving
