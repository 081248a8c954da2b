// Package gateway funnels every outbound API call through a request-phase
// and a response-phase gate.
//
// The request gate suppresses rapid-fire duplicate calls (the UI layer is
// prone to re-render storms), attaches the session's bearer token, and
// short-circuits calls that would go out with a known-expired credential.
// The response gate clears the session and fires the configured navigate
// hook exactly once per unauthenticated episode when the backend answers
// 401.
//
// Partial-content reads, binary downloads, and boot-critical endpoints are
// never deduplicated: suppressing those would corrupt document streaming
// or block startup. The exemptions live in a declarative rule table, see
// rules.go.
//
// All mutable state (the recent-request registry, the redirect-once flag)
// is owned by a constructed Gateway instance. Tests can run independent
// gateways side by side and call Reset between cases.
package gateway
