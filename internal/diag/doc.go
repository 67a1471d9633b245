// Package diag defines the diagnostic model shared by the lexer, the driver and the CLI.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string ID (LEX1xxx for lexical errors, IO4xxx for load failures), a short
// Message, the Primary span and optional Notes.
//
// Producers emit through a Reporter (BagReporter stores into a Bag) so that the
// lexer never depends on storage or formatting. Rendering lives in
// internal/diagfmt; FormatShortDiagnostics here provides the stable
// one-line-per-entry form used by tests and the --diag-format=short flag.
package diag
