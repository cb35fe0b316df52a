package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the board uses.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(colorText).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorSurface1)
	chipStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1).MarginRight(1)
	clearHintStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	placeholder    = lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true)

	cellStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Foreground(colorText)
	cellSelected  = cellStyle.BorderForeground(colorLavender).Bold(true)
	cellNavigate  = lipgloss.NewStyle().Foreground(colorBlue)
	cellImageLine = lipgloss.NewStyle().Foreground(colorSubtext0)

	statusBarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	errorStyle     = lipgloss.NewStyle().Foreground(colorRed).Background(colorSurface0).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorMantle).Padding(0, 1)
	spokenStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	loadingStyle   = lipgloss.NewStyle().Foreground(colorPeach)
)
