// Package style holds the pinto color palette and status glyphs shared by
// the CLI logger and prompts.
package style

import "github.com/charmbracelet/lipgloss"

// Palette. Muted by default so formatter chatter stays out of the way;
// warnings and errors carry the only saturated colors.
var (
	Slate  = lipgloss.Color("#6E7681")
	Yellow = lipgloss.Color("#D4A72C")
	Red    = lipgloss.Color("#CF222E")
)

// Status glyphs.
const (
	Warning = "!"
	Cross   = "✗"
)
