// Package diag defines the diagnostic model shared by the anvil front end.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the lexer.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or interactive behaviour.
// Rendering responsibilities live in internal/diagfmt; presenting the result
// to a user is the external driver's job.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Expected – the set of lexical alternatives that would have been
//     accepted at the primary position, for expectation-set errors.
//
// Notes should add new context (e.g. "group opened here") rather than
// repeating the diagnostic message.
//
// # Emitting diagnostics
//
// The lexer reports through a diag.Reporter to decouple emission from
// storage. diag.BagReporter aggregates diagnostics into a Bag, which supports
// sorting and deduplication. The lexer stops at the first error, so a Bag
// normally holds at most one entry per run.
package diag
