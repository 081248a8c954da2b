// Package render transforms raw assistant markdown into labelled content
// blocks, and optionally reveals text incrementally to simulate
// streaming.
//
// Sectioning is a pure transform over already-fetched text: the input is
// split on level 2-4 markdown headings, each heading is classified
// against an ordered keyword table (see classify.go), and replies with no
// recognised headings collapse into a single ANSWER block. The typewriter
// is the only part holding a resource (a ticker goroutine) and hands the
// caller an explicit handle to cancel it.
package render
