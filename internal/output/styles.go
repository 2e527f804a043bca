package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorAccent = lipgloss.Color("#3AA99F")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorRed    = lipgloss.Color("#D14D41")
	colorGreen  = lipgloss.Color("#879A39")
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
}

// newStyles binds the palette to r. A nil renderer writes plain text.
func newStyles(r *lipgloss.Renderer) styles {
	if r == nil {
		r = lipgloss.NewRenderer(io.Discard)
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorAccent),
		header: r.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		border: r.NewStyle().Foreground(colorMuted),
		muted:  r.NewStyle().Foreground(colorMuted),
		good:   r.NewStyle().Foreground(colorGreen),
		bad:    r.NewStyle().Foreground(colorRed),
	}
}

func (s styles) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		}).
		String()
}

// RenderTable draws a bordered table for ad-hoc CLI output.
func RenderTable(r *lipgloss.Renderer, title string, headers []string, rows [][]string) string {
	s := newStyles(r)
	out := s.table(headers, rows) + "\n"
	if title != "" {
		out = s.title.Render(title) + "\n" + out
	}
	return out
}
