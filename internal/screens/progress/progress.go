package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/achievements"
	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/progression"
	"github.com/nicoespa/mentalgym/internal/router"
	"github.com/nicoespa/mentalgym/internal/screen"
	"github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/store"
	"github.com/nicoespa/mentalgym/internal/ui/components"
	"github.com/nicoespa/mentalgym/internal/ui/layout"
	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

// progressLoadedMsg carries everything the progress screen displays.
type progressLoadedMsg struct {
	Profile  store.Profile
	Sessions []store.SessionRecord
	Unlocked []achievements.Achievement
	Locked   []achievements.Achievement
	Err      error
}

// ProgressScreen displays the profile, session history and achievements.
type ProgressScreen struct {
	orch     *session.Orchestrator
	catalog  content.Store
	sessions store.SessionRepo

	profile  store.Profile
	history  []store.SessionRecord
	unlocked []achievements.Achievement
	locked   []achievements.Achievement
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(orch *session.Orchestrator, catalog content.Store, sessions store.SessionRepo) *ProgressScreen {
	return &ProgressScreen{
		orch:     orch,
		catalog:  catalog,
		sessions: sessions,
	}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		profile, err := s.orch.EnsureProfile(ctx)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}

		history, err := s.sessions.History(ctx, 20)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}

		prog, err := s.sessions.Progress(ctx)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		var completed int
		for _, tp := range prog {
			if tp.Completed {
				completed++
			}
		}

		in := achievements.Input{
			Profile:         profile,
			Sessions:        len(history),
			TopicsCompleted: completed,
			TotalTopics:     len(s.catalog.Topics()),
		}

		unlocked := achievements.Unlocked(in)
		unlockedIDs := make(map[string]bool, len(unlocked))
		for _, a := range unlocked {
			unlockedIDs[a.ID] = true
		}
		var locked []achievements.Achievement
		for _, a := range achievements.All() {
			if !unlockedIDs[a.ID] {
				locked = append(locked, a)
			}
		}

		return progressLoadedMsg{
			Profile:  profile,
			Sessions: history,
			Unlocked: unlocked,
			Locked:   locked,
		}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progreso"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.profile = msg.Profile
			s.history = msg.Sessions
			s.unlocked = msg.Unlocked
			s.locked = msg.Locked
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Cargando progreso...")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(s.renderProfile(width))
	b.WriteString("\n\n")
	b.WriteString(s.renderAchievements(width))
	b.WriteString("\n\n")
	b.WriteString(s.renderHistory(width))

	return b.String()
}

// renderProfile shows the level bar and headline numbers.
func (s *ProgressScreen) renderProfile(width int) string {
	var b strings.Builder

	nextXP := progression.NextLevelXP(s.profile.Level)
	floor := progression.NextLevelXP(s.profile.Level - 1)
	var pct float64
	if nextXP > floor {
		pct = float64(s.profile.XP-floor) / float64(nextXP-floor)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Nivel %d · %d/%d XP", s.profile.Level, s.profile.XP, nextXP),
		pct, true, min(width-8, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("🔥 Racha: %d        Sesiones: %d", s.profile.Streak, len(s.history))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))

	return b.String()
}

func (s *ProgressScreen) renderAchievements(width int) string {
	var b strings.Builder

	b.WriteString(sectionHeader(width, "Logros"))
	b.WriteString("\n")

	for _, a := range s.unlocked {
		line := fmt.Sprintf("  %s %s — %s", a.Icon, a.Title, a.Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
		b.WriteString("\n")
	}
	for _, a := range s.locked {
		line := fmt.Sprintf("  🔒 %s — %s", a.Title, a.Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *ProgressScreen) renderHistory(width int) string {
	var b strings.Builder

	b.WriteString(sectionHeader(width, "Sesiones recientes"))
	b.WriteString("\n")

	if len(s.history) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("  Todavía no entrenaste. ¡Empezá hoy!"))
		return b.String()
	}

	for _, rec := range s.history {
		dateStr := rec.FinishedAt.Format("02 Jan 2006")
		mins := int(rec.Duration.Minutes())
		secs := int(rec.Duration.Seconds()) % 60

		line := fmt.Sprintf("  %s  %s  %s  %d/%d  ⚡%d  %d:%02d",
			dateStr, s.topicTitle(rec.TopicID), components.StarsRow(rec.Stars, 3),
			rec.Correct, rec.Total, rec.XPEarned, mins, secs)

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// topicTitle resolves a topic id to its title, falling back to the id for
// topics removed from the catalog.
func (s *ProgressScreen) topicTitle(id string) string {
	topic, err := s.catalog.Topic(id)
	if err != nil {
		return id
	}
	return topic.Title
}

func sectionHeader(width int, title string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
