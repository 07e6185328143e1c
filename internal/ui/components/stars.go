package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

// StarsRow renders earned stars out of a total, unearned stars dimmed.
func StarsRow(earned, total int) string {
	if earned < 0 {
		earned = 0
	}
	if earned > total {
		earned = total
	}

	lit := lipgloss.NewStyle().Foreground(theme.Accent).Render(
		strings.TrimRight(strings.Repeat("★ ", earned), " "))
	dim := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.TrimRight(strings.Repeat("☆ ", total-earned), " "))

	switch {
	case earned == 0:
		return dim
	case earned == total:
		return lit
	}
	return lit + " " + dim
}
