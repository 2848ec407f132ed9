// internal/app/app.go
package app

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hdim/internal/config"
	"github.com/llehouerou/hdim/internal/errmsg"
	"github.com/llehouerou/hdim/internal/imageio"
	"github.com/llehouerou/hdim/internal/keymap"
	"github.com/llehouerou/hdim/internal/log"
	"github.com/llehouerou/hdim/internal/pixel"
	"github.com/llehouerou/hdim/internal/state"
	"github.com/llehouerou/hdim/internal/ui/keyhelp"
	"github.com/llehouerou/hdim/internal/ui/layout"
	"github.com/llehouerou/hdim/internal/viewport"
)

// Model is the root application model containing all state.
type Model struct {
	Config   config.ViewerConfig
	Image    *imageio.Image
	Viewport viewport.State
	StateMgr state.Interface // nil when the state database is unavailable
	Keys     *keymap.Resolver
	Limiter  *InputLimiter
	KeyHelp  keyhelp.Model
	Layout   layout.Layout

	Frame     string    // last rendered image window content
	Average   pixel.RGB // mean color of the visible source region
	StatusMsg string
	FatalErr  string // set when rendering failed; the program quits with it

	stateKey string
	fitted   bool
	now      func() time.Time
}

// New creates the viewer model for a loaded image. When a saved viewport
// exists for the image and remembering is enabled, it is restored.
func New(img *imageio.Image, cfg config.ViewerConfig, stateMgr state.Interface) Model {
	m := Model{
		Config:   cfg,
		Image:    img,
		Viewport: viewport.New(img.Width(), img.Height(), 1),
		StateMgr: stateMgr,
		Keys:     keymap.NewResolver(keymap.Bindings),
		Limiter:  NewInputLimiter(cfg.InputDelay()),
		KeyHelp:  keyhelp.New(),
		stateKey: stateKey(img.Path),
		now:      time.Now,
	}
	if cfg.InitialZoom > 0 {
		m.Viewport.SetZoom(float32(cfg.InitialZoom))
		m.fitted = true
	}
	m.restoreViewport()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) restoreViewport() {
	if m.StateMgr == nil || !m.Config.Remember() {
		return
	}
	saved, err := m.StateMgr.GetViewport(m.stateKey)
	if err != nil {
		log.Warn("%s", errmsg.FormatWith(errmsg.OpViewportRestore, m.stateKey, err))
		m.StatusMsg = errmsg.Format(errmsg.OpViewportRestore, err)
		return
	}
	if saved == nil {
		return
	}
	m.Viewport.Restore(saved.SourceX, saved.SourceY, saved.Zoom)
	m.fitted = true
	log.Debug("restored viewport for %s: x=%d y=%d zoom=%.3f", m.stateKey, saved.SourceX, saved.SourceY, saved.Zoom)
}

func (m *Model) saveViewport() {
	if m.StateMgr == nil || !m.Config.Remember() {
		return
	}
	x, y := m.Viewport.SourcePos()
	m.StateMgr.SaveViewport(state.ViewportState{
		Path:    m.stateKey,
		SourceX: x,
		SourceY: y,
		Zoom:    m.Viewport.ZoomFactor(),
	})
}

// stateKey identifies an image in the state database by absolute path.
func stateKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
