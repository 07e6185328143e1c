package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

// HeartsRow renders the remaining hearts out of a total, lost hearts dimmed.
func HeartsRow(remaining, total int) string {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > total {
		remaining = total
	}

	full := lipgloss.NewStyle().Foreground(theme.Error).Render(
		strings.TrimRight(strings.Repeat("❤ ", remaining), " "))
	lost := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.TrimRight(strings.Repeat("♡ ", total-remaining), " "))

	switch {
	case remaining == 0:
		return lost
	case remaining == total:
		return full
	}
	return full + " " + lost
}
