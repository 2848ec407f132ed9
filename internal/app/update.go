// internal/app/update.go
package app

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hdim/internal/errmsg"
	"github.com/llehouerou/hdim/internal/halfblock"
	"github.com/llehouerou/hdim/internal/keymap"
	"github.com/llehouerou/hdim/internal/log"
	"github.com/llehouerou/hdim/internal/pixel"
	"github.com/llehouerou/hdim/internal/ui/layout"
	"github.com/llehouerou/hdim/internal/viewport"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Layout = layout.Calculate(msg.Width, msg.Height)
	if !m.fitted && m.Layout.HasImageArea() {
		m.fitToWindow()
		m.fitted = true
	}
	m.rerender()
	if m.FatalErr != "" {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.ResolveMsg(msg)
	switch action {
	case "":
		return m, nil
	case keymap.ActionQuit:
		return m, tea.Quit
	}

	if !m.Limiter.Allow(m.now()) {
		return m, nil
	}

	m.StatusMsg = ""
	m.apply(action)
	m.rerender()
	if m.FatalErr != "" {
		return m, tea.Quit
	}
	m.saveViewport()
	return m, nil
}

// apply maps an action onto the viewport.
func (m *Model) apply(action keymap.Action) {
	step, page := m.Config.ScrollStep, m.Config.PageStep
	switch action {
	case keymap.ActionScrollLeft:
		m.scroll(-step, 0)
	case keymap.ActionScrollRight:
		m.scroll(step, 0)
	case keymap.ActionScrollUp:
		m.scroll(0, -step)
	case keymap.ActionScrollDown:
		m.scroll(0, step)
	case keymap.ActionPageLeft:
		m.scroll(-page, 0)
	case keymap.ActionPageRight:
		m.scroll(page, 0)
	case keymap.ActionPageUp:
		m.scroll(0, -page)
	case keymap.ActionPageDown:
		m.scroll(0, page)
	case keymap.ActionJumpOrigin:
		m.Viewport.ScrollTo(0, 0)
	case keymap.ActionZoomIn:
		m.Viewport.Zoom(float32(1 / m.Config.ZoomStep))
	case keymap.ActionZoomOut:
		m.Viewport.Zoom(float32(m.Config.ZoomStep))
	case keymap.ActionZoomReset:
		m.fitToWindow()
		m.Viewport.ScrollTo(0, 0)
	}
}

// scroll moves the viewport by a number of cells on each axis.
func (m *Model) scroll(cols, rows int) {
	zoom := m.Viewport.ZoomFactor()
	m.Viewport.Scroll(cellsToPixels(cols, zoom), cellsToPixels(rows, zoom))
}

// cellsToPixels converts a cell count to source pixels at the given zoom.
// Any non-zero move is at least one pixel.
func cellsToPixels(cells int, zoom float32) int32 {
	if cells == 0 {
		return 0
	}
	px := math.Round(math.Abs(float64(cells) * float64(zoom)))
	px = min(max(px, 1), math.MaxInt32)
	if cells < 0 {
		return -int32(px)
	}
	return int32(px)
}

func (m *Model) fitToWindow() {
	cols, rows := m.Layout.ImageTarget()
	m.Viewport.SetZoom(viewport.FitZoom(
		m.Image.Width(), m.Image.Height(),
		uint32(max(cols, 0)), uint32(max(rows, 0)),
	))
}

// rerender refreshes the cached frame for the current layout and viewport.
func (m *Model) rerender() {
	if !m.Layout.HasImageArea() {
		m.Frame = ""
		return
	}
	cols, rows := m.Layout.ImageTarget()
	v := m.Viewport.View(uint32(cols), uint32(rows))

	start := time.Now()
	frame, err := halfblock.Render(m.Image.Image, v)
	if err != nil {
		m.FatalErr = errmsg.Format(errmsg.OpRender, err)
		log.Error("%s", m.FatalErr)
		return
	}
	m.Frame = frame
	m.Average = pixel.AverageColor(m.Image.Image, v.Source())
	log.Debug("rendered %dx%d cells from %s in %s", cols, rows, v.Source(), time.Since(start))
}
