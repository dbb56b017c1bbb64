// Package output constructs the termenv output the logger renders through.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// profile honors NO_COLOR before asking the terminal what it supports.
func profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New wraps w in a termenv.Output with the detected color profile. A nil
// writer falls back to stderr, where all pinto diagnostics go.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
