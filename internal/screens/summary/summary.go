package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/progression"
	"github.com/nicoespa/mentalgym/internal/router"
	"github.com/nicoespa/mentalgym/internal/screen"
	"github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/ui/components"
	"github.com/nicoespa/mentalgym/internal/ui/layout"
	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

// SummaryScreen displays the results of a finished session.
type SummaryScreen struct {
	outcome *session.Outcome
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(outcome *session.Outcome) *SummaryScreen {
	return &SummaryScreen{outcome: outcome}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Resultados"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continuar"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	out := s.outcome
	if out == nil {
		return ""
	}
	sum := out.Summary

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("¡Sesión completada!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sum.TopicName))
	b.WriteString("\n\n")

	// Stars, big and centered.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.StarsRow(sum.Stars, progression.MaxStars)))
	b.WriteString("\n\n")

	if out.LeveledUp {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("⬆ ¡Subiste al nivel %d!", out.Profile.Level)))
		b.WriteString("\n\n")
	}

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Correctas: %d/%d        Precisión: %.0f%%        Tiempo: %d:%02d",
		sum.Correct, sum.Total, sum.Accuracy*100, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	extras := fmt.Sprintf("⚡ +%d XP        ❤ %d restantes", sum.XPEarned, sum.HeartsLeft)
	if sum.ReviewAttempts > 0 {
		extras += fmt.Sprintf("        Repaso: %d intentos", sum.ReviewAttempts)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(extras))
	b.WriteString("\n\n")

	// Progress toward the next level.
	nextXP := progression.NextLevelXP(out.Profile.Level)
	floor := progression.NextLevelXP(out.Profile.Level - 1)
	var pct float64
	if nextXP > floor {
		pct = float64(out.Profile.XP-floor) / float64(nextXP-floor)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Nivel %d · %d/%d XP", out.Profile.Level, out.Profile.XP, nextXP),
		pct, false, min(width-8, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	streakLine := fmt.Sprintf("🔥 Racha: %d %s", out.Profile.Streak, dayWord(out.Profile.Streak))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(streakLine))

	return b.String()
}

func dayWord(n int) string {
	if n == 1 {
		return "día"
	}
	return "días"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
