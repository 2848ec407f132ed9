// Package keymap defines key bindings and action dispatch for the viewer.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"

	// Scrolling (one scroll step)
	ActionScrollLeft  Action = "scroll_left"
	ActionScrollRight Action = "scroll_right"
	ActionScrollUp    Action = "scroll_up"
	ActionScrollDown  Action = "scroll_down"

	// Scrolling (one page step)
	ActionPageLeft  Action = "page_left"
	ActionPageRight Action = "page_right"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Jump to top-left corner
	ActionJumpOrigin Action = "jump_origin"

	// Zoom
	ActionZoomIn    Action = "zoom_in"
	ActionZoomOut   Action = "zoom_out"
	ActionZoomReset Action = "zoom_reset" // fit image and return to origin
)
