// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hdim/internal/halfblock"
	"github.com/llehouerou/hdim/internal/ui/headerbar"
	"github.com/llehouerou/hdim/internal/ui/infopanel"
	"github.com/llehouerou/hdim/internal/ui/layout"
	"github.com/llehouerou/hdim/internal/ui/styles"
)

const keyHints = "q quit  arrows/hjkl scroll  HJKL page  +/- zoom  0 fit  g origin"

// View renders the application UI.
func (m Model) View() string {
	l := m.Layout
	if l.Width == 0 || l.Height == 0 {
		return ""
	}

	header := headerbar.Render(m.Image.Path, l.Width)
	footer := m.renderFooter()

	if l.MiddleHeight == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, footer)
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		infopanel.Render(m.info(), l.LeftWidth, l.MiddleHeight),
		styles.Panel(m.imageTitle(), strings.Join(halfblock.Lines(m.Frame), "\n"), l.ImageWidth, l.MiddleHeight, true),
		m.KeyHelp.View(l.RightWidth, l.MiddleHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, middle, footer)
}

func (m Model) imageTitle() string {
	x, y := m.Viewport.SourcePos()
	return fmt.Sprintf("Scroll [X: %d, Y: %d] - Zoom: %.2f", x, y, m.Viewport.ZoomFactor())
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	content := s.Subtle.Render(keyHints)
	if m.StatusMsg != "" {
		content = s.Warning.Render(m.StatusMsg)
	}
	return styles.Panel("", content, m.Layout.Width, layout.FooterHeight, false)
}

func (m Model) info() infopanel.Info {
	x, y := m.Viewport.SourcePos()
	return infopanel.Info{
		Path:           m.Image.Path,
		Format:         m.Image.Format,
		FileSize:       m.Image.FileSize,
		Width:          m.Image.Width(),
		Height:         m.Image.Height(),
		OriginalWidth:  m.Image.OriginalWidth,
		OriginalHeight: m.Image.OriginalHeight,
		Downscaled:     m.Image.Downscaled,
		Zoom:           m.Viewport.ZoomFactor(),
		SourceX:        x,
		SourceY:        y,
		Average:        m.Average,
	}
}
