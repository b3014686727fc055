package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return r.ActionFor(msg, scope) == action && action != ""
}

// ActionFor returns the first action bound to the pressed key in scope, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// HelpPairs lists key/description pairs for scope, one per action.
func (r *KeyRegistry) HelpPairs(scope string) [][2]string {
	seen := map[string]bool{}
	out := make([][2]string, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if seen[b.Action] || len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		seen[b.Action] = true
		out = append(out, [2]string{b.Keys[0], b.Description})
	}
	return out
}

// Keys are compared case-sensitively after trimming, so "f" and "F" can
// carry different actions.
func normalizeKey(k string) string {
	return strings.TrimSpace(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
