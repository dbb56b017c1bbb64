// Package detector provides environment detection for prompt and output
// decisions.
package detector

import (
	"os"

	"golang.org/x/term"
)

// IsCI reports whether the process runs under a CI system.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// Interactive reports whether the session can ask the user questions.
// A prompt needs a terminal on stdin and must never fire in CI, where
// nobody is there to answer.
func Interactive() bool {
	if IsCI() {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
