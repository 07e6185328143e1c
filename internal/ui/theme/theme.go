package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, loosely following Catppuccin Mocha. Muted base tones so
// long training sessions stay easy on the eyes, with pastel accents for
// rewards and verdicts.
var (
	Primary   = lipgloss.Color("#89B4FA") // Blue
	Secondary = lipgloss.Color("#CBA6F7") // Mauve
	Accent    = lipgloss.Color("#FAB387") // Peach
	Success   = lipgloss.Color("#A6E3A1") // Green
	Error     = lipgloss.Color("#F38BA8") // Red
	Text      = lipgloss.Color("#CDD6F4") // Lavender white
	TextDim   = lipgloss.Color("#6C7086") // Overlay grey
	BgDark    = lipgloss.Color("#11111B") // Crust
	BgCard    = lipgloss.Color("#181825") // Mantle
	Border    = lipgloss.Color("#313244") // Surface
)

// Near marks an exact-answer attempt that was close but not correct,
// so it reads as "almost" rather than as a plain failure.
var Near = lipgloss.NewStyle().
	Foreground(Accent).
	Bold(true)
