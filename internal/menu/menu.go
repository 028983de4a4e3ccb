// Package menu holds the options of a text menu: the key the user types,
// a description, and the action to run. Keys are matched case-insensitively.
package menu

import (
	"context"
	"fmt"
	"strings"
)

type Action func(ctx context.Context) error

type option struct {
	key         string // as given, used for display
	description string
	action      Action
}

type Menu struct {
	options map[string]option
	order   []string
}

func New() *Menu {
	return &Menu{options: make(map[string]option)}
}

// Add registers an option, replacing any option with the same key.
// A replaced option keeps its original position.
func (m *Menu) Add(key, description string, action Action) {
	normalized := strings.ToLower(key)
	if _, exists := m.options[normalized]; !exists {
		m.order = append(m.order, normalized)
	}
	m.options[normalized] = option{
		key:         key,
		description: description,
		action:      action,
	}
}

func (m *Menu) IsValid(choice string) bool {
	_, ok := m.options[strings.ToLower(choice)]
	return ok
}

// Action returns the action for choice, or nil if there is no such option.
func (m *Menu) Action(choice string) Action {
	opt, ok := m.options[strings.ToLower(choice)]
	if !ok {
		return nil
	}
	return opt.action
}

func (m *Menu) String() string {
	lines := make([]string, 0, len(m.order))
	for _, key := range m.order {
		opt := m.options[key]
		lines = append(lines, fmt.Sprintf("%s: %s", opt.key, opt.description))
	}
	return strings.Join(lines, "\n")
}
