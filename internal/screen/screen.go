package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nicoespa/mentalgym/internal/store"
	"github.com/nicoespa/mentalgym/internal/ui/layout"
)

// ProfileUpdatedMsg announces that the stored profile changed, so the
// frame header and any stats view can show fresh numbers.
type ProfileUpdatedMsg struct {
	Profile store.Profile
}

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is an optional interface for screens that reload their data
// when they become the active screen again after a pop.
type Refresher interface {
	Refresh() tea.Cmd
}

// EscInterceptor is an optional interface for screens that handle esc
// themselves instead of the default back navigation.
type EscInterceptor interface {
	InterceptEsc() bool
}
