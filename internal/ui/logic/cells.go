package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"filegrid/internal/config"
	"filegrid/internal/domain"
)

// StatusAvailable is the status value that shows the availability dot
const StatusAvailable = "available"

var statusDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#85ce3d"))

// Renderer decorates a raw cell value
type Renderer func(value string) string

// MatchField returns an accessor reading field from a row, ignoring case.
// Rows without the field render as "".
func MatchField(field string) func(domain.Row) string {
	return func(row domain.Row) string {
		return row.Get(field)
	}
}

// RenderField returns an accessor that passes the field value through render
func RenderField(field string, render Renderer) func(domain.Row) string {
	get := MatchField(field)
	return func(row domain.Row) string {
		return render(get(row))
	}
}

// RenderStatus shows a status with a leading dot that is visible only for
// available rows. The label is capitalized.
func RenderStatus(status string) string {
	if status == "" {
		return ""
	}
	dot := " "
	if status == StatusAvailable {
		dot = statusDotStyle.Render("●")
	}
	return dot + " " + capitalize(status)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// RendererFor maps a configured renderer name to a Renderer.
// Plain text uses nil.
func RendererFor(name string) Renderer {
	switch strings.ToLower(name) {
	case config.RendererStatus:
		return RenderStatus
	default:
		return nil
	}
}

// BuildColumns turns column settings into grid columns
func BuildColumns(cols []config.ColumnConfig) []domain.Column {
	out := make([]domain.Column, 0, len(cols))
	for _, c := range cols {
		display := c.Display
		if display == "" {
			display = capitalize(c.Field)
		}
		col := domain.Column{Display: display, CellValue: MatchField(c.Field)}
		if render := RendererFor(c.Renderer); render != nil {
			col.CellValue = RenderField(c.Field, render)
		}
		out = append(out, col)
	}
	return out
}
