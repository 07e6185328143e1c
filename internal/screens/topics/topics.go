package topics

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/router"
	"github.com/nicoespa/mentalgym/internal/screen"
	sessionscreen "github.com/nicoespa/mentalgym/internal/screens/session"
	"github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/store"
	"github.com/nicoespa/mentalgym/internal/ui/components"
	"github.com/nicoespa/mentalgym/internal/ui/layout"
	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

// progressLoadedMsg carries per-topic progress for the list decorations.
type progressLoadedMsg struct {
	Progress map[string]store.TopicProgress
	Err      error
}

// startFailedMsg is sent when a session could not be started.
type startFailedMsg struct {
	Err error
}

// TopicsScreen lists the available topics and starts sessions on them.
type TopicsScreen struct {
	orch     *session.Orchestrator
	sessions store.SessionRepo
	topics   []content.Topic
	progress map[string]store.TopicProgress
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)
var _ screen.Refresher = (*TopicsScreen)(nil)

// New creates a new TopicsScreen.
func New(orch *session.Orchestrator, catalog content.Store, sessions store.SessionRepo) *TopicsScreen {
	return &TopicsScreen{
		orch:     orch,
		sessions: sessions,
		topics:   catalog.Topics(),
		progress: make(map[string]store.TopicProgress),
	}
}

func (s *TopicsScreen) Init() tea.Cmd {
	return s.loadProgress()
}

// Refresh reloads progress decorations after a session finished.
func (s *TopicsScreen) Refresh() tea.Cmd {
	return s.loadProgress()
}

func (s *TopicsScreen) loadProgress() tea.Cmd {
	return func() tea.Msg {
		prog, err := s.sessions.Progress(context.Background())
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		return progressLoadedMsg{Progress: prog}
	}
}

func (s *TopicsScreen) Title() string {
	return "Temas"
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Entrenar"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.progress = msg.Progress
			s.errMsg = ""
		}
		s.loaded = true
		return s, nil

	case startFailedMsg:
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.topics)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.startSession()
		}
	}
	return s, nil
}

// startSession begins a session on the selected topic and pushes the
// session screen.
func (s *TopicsScreen) startSession() tea.Cmd {
	if s.selected < 0 || s.selected >= len(s.topics) {
		return nil
	}
	topicID := s.topics[s.selected].ID
	return func() tea.Msg {
		if _, err := s.orch.Start(context.Background(), topicID); err != nil {
			return startFailedMsg{Err: err}
		}
		return router.PushScreenMsg{Screen: sessionscreen.New(s.orch)}
	}
}

func (s *TopicsScreen) View(width, height int) string {
	if len(s.topics) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No hay temas disponibles.")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Elegí un tema para entrenar"))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s", s.errMsg)))
		b.WriteString("\n\n")
	}

	for i, topic := range s.topics {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderTopicLine(topic, i == s.selected)))
		b.WriteString("\n")

		if i == s.selected {
			desc := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("    " + topic.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *TopicsScreen) renderTopicLine(topic content.Topic, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	tp := s.progress[topic.ID]

	check := " "
	if tp.Completed {
		check = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}

	stars := components.StarsRow(tp.BestStars, 3)

	line := fmt.Sprintf("%s%s %s  %s  %s  %s  %d preguntas",
		prefix, topic.Icon, topic.Title, tierLabel(topic.Difficulty), stars, check, len(topic.Questions))

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(line)
}

// tierLabel renders the difficulty band with its theme color.
func tierLabel(tier content.Tier) string {
	switch tier {
	case content.TierBeginner:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("inicial")
	case content.TierIntermediate:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("intermedio")
	case content.TierAdvanced:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("avanzado")
	}
	return string(tier)
}
