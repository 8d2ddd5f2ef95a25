// Package ui provides terminal styling for featgov CLI output, adaptive to
// light and dark terminals.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// One Light / One Dark palette.
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#50a14f",
		Dark:  "#98c379",
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#c18401",
		Dark:  "#e5c07b",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#e45649",
		Dark:  "#e06c75",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#a0a1a7",
		Dark:  "#5c6370",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#4078f2",
		Dark:  "#61afef",
	}
)

// Shared styles, one per semantic role.
var (
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// Status icons.
const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✗"
	IconSkip = "-"
)

// RenderStatus colors a scenario status label: ready reads as done, wip as
// in-flight, manual and skip as deliberately parked, anything else as a gap.
func RenderStatus(status string) string {
	switch status {
	case "ready":
		return PassStyle.Render(status)
	case "wip":
		return WarnStyle.Render(status)
	case "manual", "skip":
		return MutedStyle.Render(status)
	default:
		return FailStyle.Render(status)
	}
}

// Pass renders a green check line prefix.
func Pass(s string) string { return PassStyle.Render(IconPass + " " + s) }

// Fail renders a red cross line prefix.
func Fail(s string) string { return FailStyle.Render(IconFail + " " + s) }

// Warn renders a yellow warning line prefix.
func Warn(s string) string { return WarnStyle.Render(IconWarn + " " + s) }

// Muted renders de-emphasized detail text.
func Muted(s string) string { return MutedStyle.Render(s) }
