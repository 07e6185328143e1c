package home

import (
	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle    MascotVariant = iota // resting brain
	MascotOnFire                       // streak going, flame headband
	MascotFlexing                      // long streak, lifting
)

const mascotIdle = ` ┌─────┐
 │ ◉ ◉ │
 │  ▽  │
 │ ~~~ │
 └─────┘`

const mascotOnFire = `  ) ) )
 ┌─────┐
 │ ◉ ◉ │
 │  ▽  │
 │ ~~~ │
 └─────┘`

const mascotFlexing = `●═┌─────┐═●
  │ ★ ★ │
  │  ▿  │
  │ ~~~ │
  └─────┘`

// mascotFor picks the mascot variant from the current streak.
func mascotFor(streak int) MascotVariant {
	switch {
	case streak >= 7:
		return MascotFlexing
	case streak >= 3:
		return MascotOnFire
	}
	return MascotIdle
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	var art string
	var fg = theme.Primary

	switch variant {
	case MascotOnFire:
		art = mascotOnFire
		fg = theme.Accent
	case MascotFlexing:
		art = mascotFlexing
		fg = theme.Success
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
