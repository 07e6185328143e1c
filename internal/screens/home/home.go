package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/router"
	"github.com/nicoespa/mentalgym/internal/screen"
	"github.com/nicoespa/mentalgym/internal/screens/progress"
	"github.com/nicoespa/mentalgym/internal/screens/topics"
	"github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/store"
	"github.com/nicoespa/mentalgym/internal/ui/components"
)

// homeDataMsg carries the profile and topic progress loaded for the dashboard.
type homeDataMsg struct {
	Profile   store.Profile
	Completed int
	Err       error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	orch       *session.Orchestrator
	sessions   store.SessionRepo
	menu       components.Menu
	menuLabels []string
	profile    store.Profile
	completed  int
	total      int
	loaded     bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(orch *session.Orchestrator, catalog content.Store, sessions store.SessionRepo) *HomeScreen {
	menuLabels := []string{"ENTRENAR", "PROGRESO", "SALIR"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topics.New(orch, catalog, sessions)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(orch, catalog, sessions)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		orch:       orch,
		sessions:   sessions,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		total:      len(catalog.Topics()),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadData()
}

// Refresh reloads the dashboard after a training session changed the profile.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadData()
}

// loadData fetches the profile and per-topic progress for the stats bar.
func (h *HomeScreen) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		profile, err := h.orch.EnsureProfile(ctx)
		if err != nil {
			return homeDataMsg{Err: err}
		}

		prog, err := h.sessions.Progress(ctx)
		if err != nil {
			return homeDataMsg{Profile: profile, Err: err}
		}

		var completed int
		for _, tp := range prog {
			if tp.Completed {
				completed++
			}
		}

		return homeDataMsg{Profile: profile, Completed: completed}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeDataMsg:
		if msg.Err == nil {
			h.profile = msg.Profile
			h.completed = msg.Completed
			h.loaded = true
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.profile.Streak), cw))
	}

	sections = append(sections, renderStatsBar(
		h.profile.Level, h.profile.XP, h.profile.Streak, h.completed, h.total, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenuButtons(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.OuterFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
