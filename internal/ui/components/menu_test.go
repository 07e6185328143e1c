package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func menuFixture(disabled ...int) Menu {
	items := []MenuItem{
		{Label: "Entrenar"},
		{Label: "Progreso"},
		{Label: "Salir"},
	}
	for _, i := range disabled {
		items[i].Disabled = true
	}
	return NewMenu(items)
}

func TestMenuSkipsDisabledOnNavigation(t *testing.T) {
	m := menuFixture(1)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2 (skip disabled item)", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Fatalf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenuStartsOnFirstEnabledItem(t *testing.T) {
	m := menuFixture(0)
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
}

func TestMenuStaysPutAtEdges(t *testing.T) {
	m := menuFixture()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Fatalf("Selected = %d, want 0 after up at top", m.Selected)
	}
	m.Selected = 2
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2 after down at bottom", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "Entrenar", Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Fatal("enter did not run the selected action")
	}
}

func TestMenuViewMarksSelection(t *testing.T) {
	m := menuFixture()
	view := m.View()
	if !strings.Contains(view, "❯ Entrenar") {
		t.Fatalf("view missing selection marker:\n%s", view)
	}
	if strings.Contains(view, "❯ Progreso") {
		t.Fatalf("view marks unselected item:\n%s", view)
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
	}{
		{"negative", -0.5},
		{"zero", 0},
		{"full", 1},
		{"over", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewProgressBar("XP", tt.percent, true, 40)
			view := bar.View()
			if strings.Contains(view, "-") || strings.Contains(view, "150%") {
				t.Fatalf("percent not clamped: %s", view)
			}
			if !strings.Contains(view, "XP") {
				t.Fatalf("label missing: %s", view)
			}
		})
	}
}

func TestProgressBarFillMatchesPercent(t *testing.T) {
	bar := NewProgressBar("", 0.5, false, 20)
	view := bar.View()
	filled := strings.Count(view, "█")
	empty := strings.Count(view, "░")
	if filled != 10 || empty != 10 {
		t.Fatalf("fill = %d/%d, want 10/10", filled, empty)
	}
}
