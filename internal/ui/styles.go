// Package ui holds purely cosmetic terminal styling for the interactive
// startup banner. Nothing here may influence the fixed
// "dwsh: <summary>: <detail>" diagnostic strings the executor prints;
// those are plain fmt.Fprintf calls in internal/shell, deliberately
// untouched by this package.
package ui

import "github.com/charmbracelet/lipgloss"

// The one color this minimal shell bothers with (Catppuccin Mocha's
// subtext shade).
var subtx = lipgloss.Color("#a6adc8")

var BannerStyle = lipgloss.NewStyle().Foreground(subtx)
