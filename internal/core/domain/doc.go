// Package domain contains the core types and business rules for the
// LawAfrica admin client: request descriptors, auth tokens, assistant
// messages and sections, and the thin admin records served by the
// Digital Hub API.
//
// This package has no dependency on net/http or any adapter library.
package domain
