package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "scroll", "zoom"
}

// Bindings contains all key bindings, in help display order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "esc", "ctrl+c"}, "Quit", "global"},

	// Scroll
	{ActionScrollLeft, []string{"left", "h"}, "Scroll left", "scroll"},
	{ActionScrollRight, []string{"right", "l"}, "Scroll right", "scroll"},
	{ActionScrollUp, []string{"up", "k"}, "Scroll up", "scroll"},
	{ActionScrollDown, []string{"down", "j"}, "Scroll down", "scroll"},
	{ActionPageLeft, []string{"H", "shift+left"}, "Page left", "scroll"},
	{ActionPageRight, []string{"L", "shift+right"}, "Page right", "scroll"},
	{ActionPageUp, []string{"pgup", "K", "shift+up"}, "Page up", "scroll"},
	{ActionPageDown, []string{"pgdown", "J", "shift+down"}, "Page down", "scroll"},
	{ActionJumpOrigin, []string{"g", "home"}, "Top-left corner", "scroll"},

	// Zoom
	{ActionZoomIn, []string{"+", "="}, "Zoom in", "zoom"},
	{ActionZoomOut, []string{"-", "_"}, "Zoom out", "zoom"},
	{ActionZoomReset, []string{"0"}, "Fit to window", "zoom"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
