package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Heading       lipgloss.Style
	HeaderCell    lipgloss.Style
	ToolbarItem   lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Cursor        lipgloss.Style
	ActiveRow     lipgloss.Style
	SelectedRow   lipgloss.Style
	DisabledRow   lipgloss.Style
	Checked       lipgloss.Style
	Indeterminate lipgloss.Style
	NoData        lipgloss.Style
	Panel         lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Confirm:     lipgloss.NewStyle().Bold(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Heading:     lipgloss.NewStyle().Bold(true),
		HeaderCell:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		ToolbarItem: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Help:        lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ActiveRow:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SelectedRow:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		DisabledRow:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Checked:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Indeterminate: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		NoData:        lipgloss.NewStyle().Faint(true).Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
