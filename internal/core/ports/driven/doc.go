// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AuthAPI, AssistantAPI, AdminAPI: the LawAfrica Digital Hub REST surface
//   - SessionStore: bearer token persistence for the signed-in session
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
//   - ThreadStore: local cache of assistant conversations. Without it,
//     past threads simply cannot be reopened offline.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
