// Package keyhelp renders the key bindings sidebar.
package keyhelp

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/hdim/internal/keymap"
	"github.com/llehouerou/hdim/internal/ui/styles"
)

// Title is shown in the panel's top border.
const Title = "Keys"

// sections defines the display order of binding contexts.
var sections = []struct {
	context string
	label   string
}{
	{"scroll", "Scroll"},
	{"zoom", "Zoom"},
	{"global", "General"},
}

// Model renders grouped key help with bubbles/help styles.
type Model struct {
	help help.Model
}

// New creates the key help model.
func New() Model {
	h := help.New()
	t := styles.T()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(t.Primary)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(t.FgBase)
	return Model{help: h}
}

// View draws the panel at the given outer size.
func (m Model) View(width, height int) string {
	m.help.Width = max(width-2, 0)
	s := styles.T().S()

	var lines []string
	for i, sec := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, s.Muted.Render(sec.label))
		keys := keymap.NewResolver(keymap.ByContext(sec.context)).HelpKeys()
		for _, k := range keys {
			lines = append(lines, m.help.ShortHelpView([]key.Binding{k}))
		}
	}
	return styles.Panel(Title, strings.Join(lines, "\n"), width, height, false)
}
