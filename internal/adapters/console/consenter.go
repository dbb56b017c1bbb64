// Package console implements interactive terminal prompts.
package console

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go.trai.ch/pinto/internal/adapters/detector"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/pinto/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Consenter = (*Consenter)(nil)

// Consenter asks yes/no questions on the controlling terminal. When stdin
// is not a terminal the answer is always no, a background run must never
// hang on a prompt or install software unasked.
type Consenter struct {
	in    io.Reader
	out   io.Writer
	isTTY func() bool
}

// NewConsenter creates a Consenter bound to the process's stdin and stderr.
func NewConsenter() *Consenter {
	return &Consenter{
		in:    os.Stdin,
		out:   os.Stderr,
		isTTY: detector.Interactive,
	}
}

// NewConsenterFor creates a Consenter over explicit streams, used in tests.
func NewConsenterFor(in io.Reader, out io.Writer, isTTY func() bool) *Consenter {
	return &Consenter{in: in, out: out, isTTY: isTTY}
}

// Confirm prints prompt followed by a [y/N] marker and reads one line.
// Only an explicit "y" or "yes" counts as consent.
func (c *Consenter) Confirm(prompt string) (bool, error) {
	if !c.isTTY() {
		return false, nil
	}

	marker := lipgloss.NewStyle().Foreground(style.Slate).Render("[y/N]")
	if _, err := io.WriteString(c.out, prompt+" "+marker+" "); err != nil {
		return false, zerr.Wrap(err, "failed to write prompt")
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, zerr.Wrap(err, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
