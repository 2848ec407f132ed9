// Package infopanel renders the image details sidebar.
package infopanel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/hdim/internal/pixel"
	"github.com/llehouerou/hdim/internal/ui/render"
	"github.com/llehouerou/hdim/internal/ui/styles"
)

// Title is shown in the panel's top border.
const Title = "Image"

// Info is everything the panel displays.
type Info struct {
	Path     string
	Format   string
	FileSize int64

	Width  uint32 // decoded size used for sampling
	Height uint32

	OriginalWidth  int
	OriginalHeight int
	Downscaled     bool

	Zoom    float32
	SourceX uint32
	SourceY uint32

	Average pixel.RGB // mean color of the visible source region
}

// Render draws the panel at the given outer size.
func Render(info Info, width, height int) string {
	inner := max(width-2, 0)
	s := styles.T().S()

	row := func(label, value string) string {
		l := s.Label.Render(label)
		v := s.Value.Render(render.Truncate(value, max(inner-lipgloss.Width(label)-1, 0)))
		return render.Row(l, v, inner)
	}

	lines := []string{
		s.Title.Render(render.Truncate(filepath.Base(info.Path), inner)),
		"",
		row("Format", strings.ToUpper(info.Format)),
		row("Size", fmt.Sprintf("%dx%d", info.Width, info.Height)),
	}
	if info.Downscaled {
		lines = append(lines, row("Original", fmt.Sprintf("%dx%d", info.OriginalWidth, info.OriginalHeight)))
	}
	lines = append(lines,
		row("File", humanize.IBytes(uint64(max(info.FileSize, 0)))),
		"",
		row("Zoom", fmt.Sprintf("%.2f", info.Zoom)),
		row("X", fmt.Sprintf("%d", info.SourceX)),
		row("Y", fmt.Sprintf("%d", info.SourceY)),
		"",
		row("Average", info.Average.Hex()),
		Swatch(info.Average, inner),
	)

	return styles.Panel(Title, strings.Join(lines, "\n"), width, height, false)
}

// Swatch renders a block of the given color, width cells wide.
func Swatch(c pixel.RGB, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}
