package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	labelStyle    = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// cell styles, indexed by cellKind
var cellStyles = map[cellKind]lipgloss.Style{
	cellFloor:       lipgloss.NewStyle().Foreground(colorDim),
	cellWall:        lipgloss.NewStyle().Foreground(colorGray),
	cellDoor:        lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
	cellClearance:   lipgloss.NewStyle().Foreground(colorYellow),
	cellEnclosure:   lipgloss.NewStyle().Foreground(colorRed),
	cellMarker:      lipgloss.NewStyle().Foreground(colorBlue),
	cellEssential:   lipgloss.NewStyle().Foreground(colorRed),
	cellRecommended: lipgloss.NewStyle().Foreground(colorYellow),
	cellOptional:    lipgloss.NewStyle().Foreground(colorWhite),
	cellPurchased:   lipgloss.NewStyle().Foreground(colorGreen),
	cellSelected:    lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Reverse(true),
}
