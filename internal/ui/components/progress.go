package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

var (
	progressLabelStyle = lipgloss.NewStyle().Foreground(theme.Text)
	progressFillStyle  = lipgloss.NewStyle().Foreground(theme.Secondary)
	progressRestStyle  = lipgloss.NewStyle().Foreground(theme.Border)
	progressPctStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(progressLabelStyle.Render(p.Label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6 // "  100%"
	}

	barWidth := p.Width - reserved
	if barWidth < 4 {
		barWidth = 4
	}

	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(float64(barWidth)*pct + 0.5)

	b.WriteString(progressFillStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(progressRestStyle.Render(strings.Repeat("░", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(progressPctStyle.Render(fmt.Sprintf("  %d%%", int(pct*100))))
	}

	return b.String()
}
