package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key. handled=false lets lower priority bindings
// for the same key run.
type KeyHandler func(m Model, key string) (next Model, cmd tea.Cmd, handled bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Panes       []int
	Priority    int
}

func (b KeyBinding) AppliesToPane(pane int) bool {
	if len(b.Panes) == 0 {
		return true
	}
	for _, p := range b.Panes {
		if p == pane {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToPane(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForPane(pane int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToPane(pane) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForPane(pane int) string {
	bindings := r.GetBindingsForPane(pane)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
