package ports

import "context"

// Tracer creates spans around formatting operations.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a span with the given name. The returned context carries
	// the span for nesting.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Shutdown flushes and releases tracing resources.
	Shutdown(ctx context.Context) error
}

// Span represents a single traced operation.
type Span interface {
	// End completes the span.
	End()

	// RecordError records an error for the span.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
