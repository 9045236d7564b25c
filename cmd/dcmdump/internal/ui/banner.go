// Package ui holds the CLI's terminal-facing decoration: the startup
// banner and its lipgloss styling.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// BannerStyle defines the styling for the ASCII banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#5436bd")).
	Bold(true)

// PrintBanner prints the "DCM Dump" ASCII art banner to stderr, so it never
// pollutes a piped stdout dump.
func PrintBanner() {
	banner := figure.NewFigure("DCM Dump", "banner3", true)

	fmt.Fprintln(os.Stderr, BannerStyle.Render(banner.String()))
	fmt.Fprintln(os.Stderr)
}
