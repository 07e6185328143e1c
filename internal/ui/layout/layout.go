package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// Chrome styles are built once; header and footer share the same bar.
var (
	barStyle = lipgloss.NewStyle().
			Background(theme.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)

	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	xpStyle     = lipgloss.NewStyle().Foreground(theme.Secondary)
	streakStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf(
		"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		titleStyle.Render(msg))
}

// RenderHeader renders the application header bar with XP and streak.
func RenderHeader(title string, xp, streak int, width int) string {
	left := brandStyle.Render("  MentalGym")
	right := xpStyle.Render(fmt.Sprintf("⚡ %d XP", xp)) +
		"   " +
		streakStyle.Render(fmt.Sprintf("🔥 racha %d", streak)) + "  "

	inner := width - 2 // border columns
	if inner < 0 {
		inner = 0
	}
	middle := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if middle < lipgloss.Width(title) {
		middle = lipgloss.Width(title)
	}
	center := lipgloss.PlaceHorizontal(middle, lipgloss.Center, titleStyle.Render(title))

	return barStyle.Width(width).Render(left + center + right)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+hintStyle.Render(h.Description))
	}
	content := "  " + strings.Join(parts, hintStyle.Render("  ·  "))
	return barStyle.Width(width).Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
