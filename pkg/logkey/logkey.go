// Package logkey holds the attribute keys used with slog so the same
// spelling is used across every handler and store.
package logkey

const (
	TraceID = "TRACE ID"
	ERROR   = "ERROR"
)
