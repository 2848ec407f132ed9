// internal/app/app_test.go
package app

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/hdim/internal/config"
	"github.com/llehouerou/hdim/internal/halfblock"
	"github.com/llehouerou/hdim/internal/imageio"
	"github.com/llehouerou/hdim/internal/pixel"
	"github.com/llehouerou/hdim/internal/state"
)

const testPath = "/tmp/hdim-test/picture.png"

func newTestImage(w, h int) *imageio.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return &imageio.Image{
		Image:          img,
		Path:           testPath,
		Format:         "png",
		FileSize:       4096,
		OriginalWidth:  w,
		OriginalHeight: h,
	}
}

func defaultViewerConfig() config.ViewerConfig {
	return (&config.Config{}).GetViewerConfig()
}

// newTestModel returns a model for a 116x64 image whose clock advances one
// second per read, so the input limiter never drops keys.
func newTestModel(t *testing.T, cfg config.ViewerConfig, mgr state.Interface) Model {
	t.Helper()
	m := New(newTestImage(116, 64), cfg, mgr)
	tick := time.Unix(0, 0)
	m.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	res, cmd := m.Update(msg)
	next, ok := res.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", res)
	}
	return next, cmd
}

// sized applies a 100x40 window, which leaves a 58x32 image grid.
func sized(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestWindowSize_FitsImageOnFirstSize(t *testing.T) {
	m := sized(t, newTestModel(t, defaultViewerConfig(), nil))

	if z := m.Viewport.ZoomFactor(); !approx(z, 2) {
		t.Errorf("zoom after first size = %v, want 2", z)
	}

	// A later resize keeps the user's zoom.
	m.Viewport.SetZoom(3)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 80})
	if z := m.Viewport.ZoomFactor(); !approx(z, 3) {
		t.Errorf("zoom after resize = %v, want 3", z)
	}
}

func TestWindowSize_InitialZoomSkipsFit(t *testing.T) {
	cfg := defaultViewerConfig()
	cfg.InitialZoom = 0.5
	m := sized(t, newTestModel(t, cfg, nil))

	if z := m.Viewport.ZoomFactor(); !approx(z, 0.5) {
		t.Errorf("zoom = %v, want 0.5", z)
	}
}

func TestWindowSize_RendersFrameForImageGrid(t *testing.T) {
	m := sized(t, newTestModel(t, defaultViewerConfig(), nil))

	lines := halfblock.Lines(m.Frame)
	if len(lines) != 32 {
		t.Fatalf("frame has %d rows, want 32", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 58 {
			t.Errorf("row %d width = %d, want 58", i, w)
		}
	}
	// At fit zoom the whole image is visible.
	want := pixel.RGB{R: 57, G: 31, B: 200}
	if m.Average != want {
		t.Errorf("Average = %+v, want %+v", m.Average, want)
	}
}

func TestWindowSize_TinyTerminal(t *testing.T) {
	m := newTestModel(t, defaultViewerConfig(), nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 6})

	if m.Frame != "" {
		t.Errorf("frame = %q, want empty when no cell is available", m.Frame)
	}
	if m.fitted {
		t.Error("fit should wait for a usable image area")
	}
	_ = m.View()
}

func TestKey_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runes("q")},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sized(t, newTestModel(t, defaultViewerConfig(), nil))
			_, cmd := update(t, m, tt.msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command returned %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestKey_QuitIgnoresLimiter(t *testing.T) {
	m := sized(t, newTestModel(t, defaultViewerConfig(), nil))
	frozen := time.Unix(100, 0)
	m.now = func() time.Time { return frozen }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Error("quit dropped by input limiter")
	}
}

func TestKey_Scroll(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tea.KeyMsg
		wantX uint32
		wantY uint32
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, 2, 0},
		{"l twice", []tea.KeyMsg{runes("l"), runes("l")}, 4, 0},
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, 0, 2},
		{"left at origin stays", []tea.KeyMsg{{Type: tea.KeyLeft}}, 0, 0},
		{"page right", []tea.KeyMsg{runes("L")}, 20, 0},
		{"page down", []tea.KeyMsg{{Type: tea.KeyPgDown}}, 0, 20},
		{"page down then up", []tea.KeyMsg{{Type: tea.KeyPgDown}, {Type: tea.KeyPgUp}}, 0, 0},
		{"clamped to image width", []tea.KeyMsg{runes("L"), runes("L"), runes("L"), runes("L"), runes("L"), runes("L"), runes("L")}, 116, 0},
		{"jump to origin", []tea.KeyMsg{runes("L"), runes("J"), runes("g")}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sized(t, newTestModel(t, defaultViewerConfig(), nil))
			for _, k := range tt.keys {
				m, _ = update(t, m, k)
			}
			x, y := m.Viewport.SourcePos()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("source pos = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestKey_Zoom(t *testing.T) {
	m := sized(t, newTestModel(t, defaultViewerConfig(), nil))

	m, _ = update(t, m, runes("+"))
	if z := m.Viewport.ZoomFactor(); !approx(z, 1.6) {
		t.Errorf("zoom after zoom in = %v, want 1.6", z)
	}

	m, _ = update(t, m, runes("-"))
	m, _ = update(t, m, runes("-"))
	if z := m.Viewport.ZoomFactor(); !approx(z, 2.5) {
		t.Errorf("zoom after two zoom outs = %v, want 2.5", z)
	}
}

func TestKey_ZoomInFloor(t *testing.T) {
	m := sized(t, newTestModel(t, defaultViewerConfig(), nil))
	for range 100 {
		m, _ = update(t, m, runes("="))
	}
	if z := m.Viewport.ZoomFactor(); z != 0.01 {
		t.Errorf("zoom = %v, want floor 0.01", z)
	}
	if lines := halfblock.Lines(m.Frame); len(lines) != 32 {
		t.Errorf("frame has %d rows at minimum zoom, want 32", len(lines))
	}
}

func TestKey_ResetFitsAndReturnsToOrigin(t *testing.T) {
	m := sized(t, newTestModel(t, defaultViewerConfig(), nil))
	m, _ = update(t, m, runes("+"))
	m, _ = update(t, m, runes("L"))

	m, _ = update(t, m, runes("0"))
	x, y := m.Viewport.SourcePos()
	if x != 0 || y != 0 {
		t.Errorf("source pos = (%d, %d), want origin", x, y)
	}
	if z := m.Viewport.ZoomFactor(); !approx(z, 2) {
		t.Errorf("zoom = %v, want fit zoom 2", z)
	}
}

func TestKey_UnboundIgnored(t *testing.T) {
	mock := state.NewMock()
	m := sized(t, newTestModel(t, defaultViewerConfig(), mock))
	before := m.Frame

	m, cmd := update(t, m, runes("x"))
	if cmd != nil {
		t.Error("unbound key should not return a command")
	}
	if m.Frame != before {
		t.Error("unbound key should not re-render")
	}
	if mock.Saves() != 0 {
		t.Errorf("saves = %d, want 0", mock.Saves())
	}
}

func TestKey_LimiterDropsFastRepeat(t *testing.T) {
	m := sized(t, newTestModel(t, defaultViewerConfig(), nil))
	now := time.Unix(100, 0)
	m.now = func() time.Time { return now }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	now = now.Add(10 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if x, _ := m.Viewport.SourcePos(); x != 2 {
		t.Errorf("x = %d, want 2 (second key dropped)", x)
	}

	now = now.Add(100 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if x, _ := m.Viewport.SourcePos(); x != 4 {
		t.Errorf("x = %d, want 4 after the delay", x)
	}
}

func TestViewport_SavedAfterChange(t *testing.T) {
	mock := state.NewMock()
	m := sized(t, newTestModel(t, defaultViewerConfig(), mock))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, runes("-"))
	if mock.Saves() != 2 {
		t.Fatalf("saves = %d, want 2", mock.Saves())
	}

	saved, err := mock.GetViewport(m.stateKey)
	if err != nil || saved == nil {
		t.Fatalf("GetViewport() = %v, %v", saved, err)
	}
	if saved.SourceX != 2 || !approx(saved.Zoom, 2.5) {
		t.Errorf("saved = %+v, want x=2 zoom=2.5", *saved)
	}
}

func TestViewport_NotSavedWhenDisabled(t *testing.T) {
	mock := state.NewMock()
	cfg := defaultViewerConfig()
	off := false
	cfg.RememberViewport = &off
	m := sized(t, newTestModel(t, cfg, mock))

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if mock.Saves() != 0 {
		t.Errorf("saves = %d, want 0", mock.Saves())
	}
}

func TestViewport_RestoredOnStart(t *testing.T) {
	mock := state.NewMock()
	mock.SaveViewport(state.ViewportState{Path: testPath, SourceX: 30, SourceY: 500, Zoom: 0.5})

	m := sized(t, newTestModel(t, defaultViewerConfig(), mock))

	x, y := m.Viewport.SourcePos()
	if x != 30 || y != 64 {
		t.Errorf("source pos = (%d, %d), want (30, 64) after clamping", x, y)
	}
	if z := m.Viewport.ZoomFactor(); !approx(z, 0.5) {
		t.Errorf("zoom = %v, want restored 0.5 instead of fit", z)
	}
}

func TestViewport_RestoreErrorIsNotFatal(t *testing.T) {
	mock := state.NewMock()
	mock.SetGetError(errors.New("database is locked"))

	m := sized(t, newTestModel(t, defaultViewerConfig(), mock))
	if !strings.Contains(m.StatusMsg, "database is locked") {
		t.Errorf("StatusMsg = %q, want restore error", m.StatusMsg)
	}
	if z := m.Viewport.ZoomFactor(); !approx(z, 2) {
		t.Errorf("zoom = %v, want fit zoom", z)
	}

	// The next accepted key clears the status line.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.StatusMsg != "" {
		t.Errorf("StatusMsg = %q, want cleared", m.StatusMsg)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, defaultViewerConfig(), nil)
	if got := m.View(); got != "" {
		t.Errorf("View before first size = %q, want empty", got)
	}

	m = sized(t, m)
	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}

	plain := ansi.Strip(out)
	for _, want := range []string{
		"hdim",
		"picture.png",
		"Scroll [X: 0, Y: 0] - Zoom: 2.00",
		"116x64",
		"Keys",
		"q quit",
	} {
		if !strings.Contains(plain, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCellsToPixels(t *testing.T) {
	tests := []struct {
		name  string
		cells int
		zoom  float32
		want  int32
	}{
		{"zero cells", 0, 2, 0},
		{"one cell at zoom 1", 1, 1, 1},
		{"rounds", 3, 1.5, 5},
		{"negative", -3, 1.5, -5},
		{"at least one pixel zoomed in", 1, 0.01, 1},
		{"at least one pixel backwards", -1, 0.01, -1},
		{"saturates", 10, math.MaxFloat32, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellsToPixels(tt.cells, tt.zoom); got != tt.want {
				t.Errorf("cellsToPixels(%d, %v) = %d, want %d", tt.cells, tt.zoom, got, tt.want)
			}
		})
	}
}

func TestInputLimiter(t *testing.T) {
	start := time.Unix(1000, 0)

	t.Run("first event allowed", func(t *testing.T) {
		l := NewInputLimiter(50 * time.Millisecond)
		if !l.Allow(start) {
			t.Error("first event dropped")
		}
	})

	t.Run("drops within delay", func(t *testing.T) {
		l := NewInputLimiter(50 * time.Millisecond)
		l.Allow(start)
		if l.Allow(start.Add(49 * time.Millisecond)) {
			t.Error("event within delay accepted")
		}
		if !l.Allow(start.Add(50 * time.Millisecond)) {
			t.Error("event at delay dropped")
		}
	})

	t.Run("dropped events do not extend the window", func(t *testing.T) {
		l := NewInputLimiter(50 * time.Millisecond)
		l.Allow(start)
		l.Allow(start.Add(40 * time.Millisecond))
		if !l.Allow(start.Add(60 * time.Millisecond)) {
			t.Error("event after delay from last accepted dropped")
		}
	})

	t.Run("zero delay accepts all", func(t *testing.T) {
		l := NewInputLimiter(0)
		for range 5 {
			if !l.Allow(start) {
				t.Fatal("event dropped with zero delay")
			}
		}
	})
}
