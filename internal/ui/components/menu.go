package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

var (
	menuActiveStyle   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	menuIdleStyle     = lipgloss.NewStyle().Foreground(theme.Text)
	menuDisabledStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if len(items) > 0 && items[0].Disabled {
		m.move(1)
	}
	return m
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// move shifts the selection by dir, skipping disabled items. The selection
// stays put when no enabled item exists in that direction.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(menuDisabledStyle.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(menuActiveStyle.Render("  ❯ " + item.Label))
		default:
			b.WriteString(menuIdleStyle.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
