// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hdim/internal/ui/render"
	"github.com/llehouerou/hdim/internal/ui/styles"
)

// Height is the fixed height of the header bar, borders included.
const Height = 3

const appName = "hdim"

var pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

// Render returns the header bar for the given image path and width.
// The path is cut from the left so the file name stays visible.
func Render(path string, width int) string {
	if width < 3 {
		return ""
	}
	t := styles.T()
	name := styles.ApplyBoldGradient(appName, t.Primary, t.Secondary)

	room := width - 2 - lipgloss.Width(appName) - 2
	content := name
	if room > 0 && path != "" {
		content += "  " + pathStyle.Render(render.TruncateLeft(path, room))
	}

	return styles.Panel("", content, width, Height, false)
}
