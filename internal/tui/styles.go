package tui

import "github.com/charmbracelet/lipgloss"

// Palette. The raster takes hex strings, lipgloss takes Colors of the same.
const (
	textHex   = "#E6E6E6"
	inkHex    = "#6B7280"
	accentHex = "#7C3AED"
	errHex    = "#F87171"
	frameHex  = "#243141"
	// overlay colors fade toward the terminal background
	backdropHex = "#0B0F14"
)

var (
	appStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(textHex))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(frameHex)).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(accentHex)).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(inkHex))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(errHex))
)
