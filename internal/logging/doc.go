// Package logging assembles structured slog loggers and formatting helpers used
// across foldersort.
//
// It owns the console/JSON handlers, centralizes level and output plumbing, and
// exposes context-aware helpers so every line emitted during a run carries the
// run identifier. The package also provides a no-op logger for tests and for
// library callers that do not care about log output.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// data with the same shape as the rest of the tool.
package logging
