package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

// Block-letter title.
const homeTitleFull = ` ███╗   ███╗███████╗███╗   ██╗████████╗ █████╗ ██╗
 ████╗ ████║██╔════╝████╗  ██║╚══██╔══╝██╔══██╗██║
 ██╔████╔██║█████╗  ██╔██╗ ██║   ██║   ███████║██║
 ██║╚██╔╝██║██╔══╝  ██║╚██╗██║   ██║   ██╔══██║██║
 ██║ ╚═╝ ██║███████╗██║ ╚████║   ██║   ██║  ██║███████╗
 ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝╚══════╝
              ██████╗ ██╗   ██╗███╗   ███╗
             ██╔════╝ ╚██╗ ██╔╝████╗ ████║
             ██║  ███╗ ╚████╔╝ ██╔████╔██║
             ██║   ██║  ╚██╔╝  ██║╚██╔╝██║
             ╚██████╔╝   ██║   ██║ ╚═╝ ██║
              ╚═════╝    ╚═╝   ╚═╝     ╚═╝`

const homeTitleCompact = "M · E · N · T · A · L   G · Y · M"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(homeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(homeTitleFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(level, xp, streak, completed, total, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	topicStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(fmt.Sprintf("N%d", level)),
			xpStyle.Render(fmt.Sprintf("⚡%d", xp)),
			streakText(streak, true, dimStyle),
			topicStyle.Render(fmt.Sprintf("✓%d/%d", completed, total)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			levelStyle.Render(fmt.Sprintf("NIVEL %d", level)),
			xpStyle.Render(fmt.Sprintf("⚡ %d XP", xp)),
			streakText(streak, false, dimStyle),
			topicStyle.Render(fmt.Sprintf("✓ %d/%d TEMAS", completed, total)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(streak int, compact bool, dim lipgloss.Style) string {
	active := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if streak == 0 {
		if compact {
			return dim.Render("🔥0")
		}
		return dim.Render("🔥 SIN RACHA")
	}
	if compact {
		return active.Render(fmt.Sprintf("🔥%d", streak))
	}
	return active.Render(fmt.Sprintf("🔥 RACHA %d", streak))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenuButtons renders each menu item as a fixed-width button.
func renderMenuButtons(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
