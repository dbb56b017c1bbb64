package domain

import "time"

// FormatPhase tracks the two-phase external process protocol. Transitions
// are driven by pint's exit code: 0 in the checking phase means the file
// is already formatted, 1 with output means an apply pass is needed.
type FormatPhase uint8

const (
	// PhaseChecking indicates the non-mutating --test invocation is running.
	PhaseChecking FormatPhase = iota
	// PhaseApplying indicates the mutating invocation is running.
	PhaseApplying
	// PhaseDone indicates the request finished successfully.
	PhaseDone
	// PhaseFailed indicates the request failed terminally.
	PhaseFailed
)

// String returns the phase name for logs and telemetry.
func (p FormatPhase) String() string {
	switch p {
	case PhaseChecking:
		return "checking"
	case PhaseApplying:
		return "applying"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FormatRequest is a single ephemeral formatting operation. It is created
// per trigger (CLI invocation, watch event, daemon call) and discarded
// once the result or error is delivered.
type FormatRequest struct {
	// Path is the absolute path of the PHP file to format.
	Path string
	// Boundary is the workspace boundary confining project resolution.
	Boundary string
	// Timeout bounds each external process invocation, not the whole request.
	Timeout time.Duration
}

// FormatResult is the outcome of a completed format request.
type FormatResult struct {
	// Path is the formatted file.
	Path string
	// Root is the project root that owned the pint binary.
	Root string
	// Binary is the resolved pint binary path.
	Binary string
	// Content is the final on-disk content of the file. After a mutating
	// invocation the file is re-read rather than trusting captured output.
	Content []byte
	// Changed reports whether the apply phase rewrote the file.
	Changed bool
	// Applied reports whether the apply phase ran at all.
	Applied bool
	// Duration covers the whole request including discovery.
	Duration time.Duration
}
