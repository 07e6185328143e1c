package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/router"
	"github.com/nicoespa/mentalgym/internal/screen"
	"github.com/nicoespa/mentalgym/internal/screens/home"
	sessionscreen "github.com/nicoespa/mentalgym/internal/screens/session"
	"github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/store"
	"github.com/nicoespa/mentalgym/internal/ui/layout"
)

// Options wires the dependencies the TUI needs.
type Options struct {
	Orchestrator *session.Orchestrator
	Catalog      content.Store
	Sessions     store.SessionRepo
	Profile      store.Profile

	// StartTopic, when set, skips the menu and starts a session on that
	// topic right away.
	StartTopic string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	orch       *session.Orchestrator
	profile    store.Profile
	startTopic string
	width      int
	height     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Orchestrator, opts.Catalog, opts.Sessions)
	return AppModel{
		router:     router.New(homeScreen),
		orch:       opts.Orchestrator,
		profile:    opts.Profile,
		startTopic: opts.StartTopic,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}

	if m.startTopic != "" {
		orch := m.orch
		topicID := m.startTopic
		cmds = append(cmds, func() tea.Msg {
			if _, err := orch.Start(context.Background(), topicID); err != nil {
				return nil
			}
			return router.PushScreenMsg{Screen: sessionscreen.New(orch)}
		})
	}

	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ProfileUpdatedMsg:
		// Keep the header numbers fresh; the active screen sees it too.
		m.profile = msg.Profile

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if esc, ok := m.router.Active().(screen.EscInterceptor); ok && esc.InterceptEsc() {
				break // screen handles esc itself
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.profile.XP, m.profile.Streak, m.width)

	var footerHints []layout.KeyHint
	if hints, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, hints.KeyHints()...)
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Elegir"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
