package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/hdim/internal/ui/render"
)

// PanelStyle returns the bordered panel style based on focus state.
func PanelStyle(focused bool) lipgloss.Style {
	color := T().Border
	if focused {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// Panel renders content inside a rounded border with the title embedded in
// the top edge. width and height are the outer size including the border.
// Content lines are clipped to the inner area and never wrapped.
func Panel(title, content string, width, height int, focused bool) string {
	if width < 3 || height < 3 {
		return ""
	}
	innerW, innerH := width-2, height-2

	border := lipgloss.RoundedBorder()
	color := T().Border
	if focused {
		color = T().BorderFocus
	}
	edge := lipgloss.NewStyle().Foreground(color)

	top := topEdge(border, title, innerW, edge)

	lines := render.ClipLines(strings.Split(content, "\n"), innerW, innerH)
	body := PanelStyle(focused).
		Border(border, false, true, true, true).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))

	return top + "\n" + body
}

func topEdge(b lipgloss.Border, title string, innerW int, edge lipgloss.Style) string {
	if title == "" || innerW < 3 {
		return edge.Render(b.TopLeft + strings.Repeat(b.Top, innerW) + b.TopRight)
	}
	title = ansi.Truncate(" "+title+" ", innerW-1, "")
	fill := max(innerW-1-ansi.StringWidth(title), 0)
	return edge.Render(b.TopLeft+b.Top) +
		T().S().Title.Render(title) +
		edge.Render(strings.Repeat(b.Top, fill)+b.TopRight)
}
