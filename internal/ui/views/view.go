package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"filegrid/internal/domain"
	"filegrid/internal/ui/services/selection"
	uistate "filegrid/internal/ui/state"
)

// NoDataMessage is shown in place of rows when there is nothing to list
const NoDataMessage = "No Data to Display"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Source string

	Columns   []domain.Column
	Rows      []domain.Row
	Disabled  []bool
	Checked   []bool
	ActiveRow int
	HasActive bool

	SelectAll     selection.CheckState
	AllSelected   bool
	SelectedCount int
	ToolbarItems  []string

	ConfirmPrompt string
	StatusMessage string
	StatusKind    uistate.StatusKind
	Downloaded    []domain.ManifestEntry
	ManifestPath  string
	HelpView      string
}

// Heading returns the toolbar heading for a selection
func Heading(allSelected bool, selectedCount, totalRows int) string {
	if !allSelected && selectedCount == 0 {
		return "None Selected"
	}
	if allSelected {
		return fmt.Sprintf("Selected %d", totalRows)
	}
	return fmt.Sprintf("Selected %d", selectedCount)
}

// Checkbox returns the plain checkbox glyph for a check state
func Checkbox(state selection.CheckState) string {
	switch state {
	case selection.Checked:
		return "[x]"
	case selection.Indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var lines []string

	title := r.styles.Title.Render("filegrid")
	if state.Source != "" {
		title += r.styles.Dim.Render("  " + state.Source)
	}
	lines = append(lines, title, "")
	lines = append(lines, r.renderToolbar(state), "")
	lines = append(lines, r.renderTable(state)...)

	var footer []string
	if state.ConfirmPrompt != "" {
		footer = append(footer, r.styles.Confirm.Render(state.ConfirmPrompt))
	}
	if state.StatusMessage != "" {
		footer = append(footer, r.statusStyle(state.StatusKind).Render(state.StatusMessage))
	}
	if len(state.Downloaded) > 0 {
		footer = append(footer, r.renderDownloaded(state))
	}
	if len(footer) > 0 {
		lines = append(lines, "")
		lines = append(lines, footer...)
	}

	content := strings.Join(lines, "\n")

	if state.HelpView != "" {
		helpText := r.styles.Help.Render(state.HelpView)

		// Push help to the bottom of the screen
		availableLines := state.Height - 2*mainPadY
		used := lipgloss.Height(content) + lipgloss.Height(helpText)
		if padding := availableLines - used; padding > 0 {
			content += strings.Repeat("\n", padding)
		}
		content += "\n" + helpText
	}

	if width := state.Width - 2*mainPadX; width > 0 {
		content = truncateLines(content, width)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content)
}

func (r *Renderer) renderToolbar(state ViewState) string {
	var parts []string
	if len(state.Columns) > 0 && len(state.Rows) > 0 {
		box := Checkbox(state.SelectAll)
		switch state.SelectAll {
		case selection.Checked:
			box = r.styles.Checked.Render(box)
		case selection.Indeterminate:
			box = r.styles.Indeterminate.Render(box)
		}
		heading := r.styles.Heading.Render(Heading(state.AllSelected, state.SelectedCount, len(state.Rows)))
		parts = append(parts, box+" "+heading)
	}
	for _, item := range state.ToolbarItems {
		parts = append(parts, r.styles.ToolbarItem.Render(item))
	}
	return strings.Repeat(" ", cursorWidth) + strings.Join(parts, cellGap)
}

func (r *Renderer) renderTable(state ViewState) []string {
	var lines []string
	prefix := strings.Repeat(" ", cursorWidth+checkboxWidth+1)

	if len(state.Columns) == 0 || len(state.Rows) == 0 {
		if len(state.Columns) > 0 {
			headers := make([]string, len(state.Columns))
			for i, col := range state.Columns {
				headers[i] = r.styles.HeaderCell.Render(col.Display)
			}
			lines = append(lines, prefix+strings.Join(headers, cellGap))
		}
		return append(lines, prefix+r.styles.NoData.Render(NoDataMessage))
	}

	cells := make([][]string, len(state.Rows))
	for i, row := range state.Rows {
		cells[i] = make([]string, len(state.Columns))
		for j, col := range state.Columns {
			cells[i][j] = col.Value(row)
		}
	}
	widths := columnWidths(state.Columns, cells)

	headers := make([]string, len(state.Columns))
	for j, col := range state.Columns {
		headers[j] = r.styles.HeaderCell.Render(fit(col.Display, widths[j]))
	}
	lines = append(lines, prefix+strings.Join(headers, cellGap))

	for i := range state.Rows {
		lines = append(lines, r.renderRow(state, i, cells[i], widths))
	}
	return lines
}

func (r *Renderer) renderRow(state ViewState, i int, cells []string, widths []int) string {
	disabled := i < len(state.Disabled) && state.Disabled[i]
	checked := i < len(state.Checked) && state.Checked[i]
	active := state.HasActive && state.ActiveRow == i

	cursor := strings.Repeat(" ", cursorWidth)
	if active {
		cursor = r.styles.Cursor.Render(">") + " "
	}

	var box string
	cellStyle := lipgloss.NewStyle()
	switch {
	case disabled:
		box = r.styles.DisabledRow.Render("[ ]")
		cellStyle = r.styles.DisabledRow
	case checked:
		box = r.styles.Checked.Render("[x]")
		cellStyle = r.styles.SelectedRow
	default:
		box = "[ ]"
	}
	if active {
		cellStyle = cellStyle.Inherit(r.styles.ActiveRow)
	}

	rendered := make([]string, len(cells))
	for j, cell := range cells {
		rendered[j] = cellStyle.Render(fit(cell, widths[j]))
	}
	return cursor + box + " " + strings.Join(rendered, cellGap)
}

func (r *Renderer) renderDownloaded(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Heading.Render("Files downloaded:"))
	for _, f := range state.Downloaded {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s, %s", f.Name, f.Path))
	}
	if state.ManifestPath != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("manifest: " + state.ManifestPath))
	}
	return r.styles.Panel.Render(b.String())
}

func (r *Renderer) statusStyle(kind uistate.StatusKind) lipgloss.Style {
	switch kind {
	case uistate.StatusError:
		return r.styles.StatusError
	case uistate.StatusSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.StatusInfo
	}
}

func columnWidths(columns []domain.Column, cells [][]string) []int {
	widths := make([]int, len(columns))
	for j, col := range columns {
		widths[j] = lipgloss.Width(col.Display)
	}
	for _, row := range cells {
		for j, cell := range row {
			if w := lipgloss.Width(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for j := range widths {
		widths[j] = min(widths[j], maxCellWidth)
	}
	return widths
}

// fit truncates s to width cells and pads it with spaces
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
