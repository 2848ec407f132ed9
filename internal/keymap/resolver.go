package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings []Binding
	byKey    map[string]Action
}

// NewResolver creates a resolver from bindings. When two bindings claim the
// same key, the first one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: bindings,
		byKey:    make(map[string]Action),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			if _, taken := r.byKey[k]; !taken {
				r.byKey[k] = b.Action
			}
		}
	}
	return r
}

// Resolve returns the action for a key string, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

// ResolveMsg returns the action bound to a key message.
func (r *Resolver) ResolveMsg(msg tea.KeyMsg) Action {
	return r.Resolve(msg.String())
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	var keys []string
	for _, b := range r.bindings {
		if b.Action == action {
			keys = append(keys, b.Keys...)
		}
	}
	return keys
}

// HelpKeys returns the bindings as bubbles key bindings for help rendering.
// The help label shows at most the first two keys.
func (r *Resolver) HelpKeys() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		shown := b.Keys
		if len(shown) > 2 {
			shown = shown[:2]
		}
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(strings.Join(shown, "/"), b.Description),
		))
	}
	return out
}
