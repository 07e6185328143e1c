package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nicoespa/mentalgym/internal/content"
	sess "github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/ui/components"
	"github.com/nicoespa/mentalgym/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.persistErr != "" {
		return renderPersistError(width, s.persistErr)
	}
	if s.defeated {
		return renderDefeat(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width int) string {
	st := s.orch.Snapshot()
	q, ok := sess.CurrentQuestion(st)
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparando la sesión...")
	}

	var b strings.Builder

	b.WriteString(renderStatusLine(st, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if st.Mode == sess.ModeReviewing {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("REPASO · %d por superar", len(st.Failed))))
		b.WriteString("\n\n")
	}

	// Question prompt, centered.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Base().Prompt))
	b.WriteString("\n\n")

	switch q := q.(type) {
	case content.MultipleChoice:
		b.WriteString(s.renderOptions(optionTexts(q.Options), width))
		b.WriteString(hint(width, "Elegí (1-4) o flechas + Enter"))
	case content.TrueFalse:
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(q.Statement)))
		b.WriteString("\n\n")
		b.WriteString(s.renderOptions([]string{"Verdadero", "Falso"}, width))
		b.WriteString(hint(width, "V / F o flechas + Enter"))
	case content.Open:
		b.WriteString(s.renderInputLine(width))
		b.WriteString(hint(width, "Escribí tu reflexión y presioná Enter"))
	case content.ListenAndWrite:
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Secondary).Render("🔊 "+q.AudioPath)))
		b.WriteString("\n\n")
		b.WriteString(s.renderInputLine(width))
		b.WriteString(hint(width, "Escuchá el audio y escribí lo que oíste"))
	case content.FillInBlank:
		b.WriteString(s.renderFillInBlank(q, width))
	case content.Order:
		b.WriteString(s.renderOrder(width))
	case content.Match:
		b.WriteString(s.renderMatch(q, width))
	}

	return b.String()
}

func optionTexts(options []content.Option) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		out[i] = opt.Text
	}
	return out
}

// renderStatusLine shows topic, question position and remaining hearts.
func renderStatusLine(st *sess.State, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", st.Topic.Icon, st.Topic.Title))

	position := fmt.Sprintf("P %d/%d", min(st.Index+1, len(st.Topic.Questions)), len(st.Topic.Questions))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(position) +
		"  " + components.HeartsRow(st.Hearts, sess.MaxHearts)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderOptions renders a vertical option picker with the cursor row styled.
func (s *SessionScreen) renderOptions(options []string, width int) string {
	var b strings.Builder
	for i, opt := range options {
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == s.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *SessionScreen) renderInputLine(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Respuesta: " + s.input.View())
}

// renderFillInBlank shows the sentence, already filled blanks and the input
// for the blank currently being completed.
func (s *SessionScreen) renderFillInBlank(q content.FillInBlank, width int) string {
	var b strings.Builder

	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render(q.Text)))
	b.WriteString("\n\n")

	for i, v := range s.blankVals {
		label := blankLabel(q.Blanks, i)
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success).Render(
			fmt.Sprintf("%s: %s ✓", label, v))))
		b.WriteString("\n")
	}

	idx := len(s.blankVals)
	if idx < len(q.Blanks) {
		label := blankLabel(q.Blanks, idx)
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label)+": "+s.input.View()))
	}

	b.WriteString(hint(width, fmt.Sprintf("Completá cada espacio y presioná Enter (%d/%d)", idx, len(q.Blanks))))
	return b.String()
}

func blankLabel(blanks []string, i int) string {
	if i < len(blanks) {
		return blanks[i]
	}
	return fmt.Sprintf("espacio %d", i+1)
}

// renderOrder shows the sequence built so far and the remaining items.
func (s *SessionScreen) renderOrder(width int) string {
	var b strings.Builder

	if len(s.picked) > 0 {
		var parts []string
		for i, item := range s.picked {
			parts = append(parts, fmt.Sprintf("%d. %s", i+1, item))
		}
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success).Render(strings.Join(parts, "   "))))
		b.WriteString("\n\n")
	}

	var list strings.Builder
	for i, item := range s.remaining {
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}
		if i == s.cursor {
			list.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(prefix + item))
		} else {
			list.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(prefix + item))
		}
		list.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	b.WriteString(hint(width, "Enter agrega en orden · Backspace deshace"))
	return b.String()
}

// renderMatch shows the left item being assigned and the right-hand pool.
func (s *SessionScreen) renderMatch(q content.Match, width int) string {
	var b strings.Builder

	for i := 0; i < s.matchIdx; i++ {
		left := s.lefts[i]
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success).Render(
			fmt.Sprintf("%s = %s ✓", left, s.matches[left]))))
		b.WriteString("\n")
	}
	if s.matchIdx > 0 {
		b.WriteString("\n")
	}

	if s.matchIdx < len(s.lefts) {
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(
			fmt.Sprintf("¿Con qué se relaciona \"%s\"?", s.lefts[s.matchIdx]))))
		b.WriteString("\n\n")
	}

	var list strings.Builder
	for i, right := range s.rights {
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.used[right] {
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
		} else if i == s.cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		list.WriteString(style.Render(prefix + right))
		list.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	b.WriteString(hint(width, "Flechas + Enter para asignar"))
	return b.String()
}

// renderFeedback renders the verdict overlay.
func (s *SessionScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case s.verdict.Correct:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("¡Correcto!"))
	case s.verdict.Close:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Inherit(theme.Near).
			Render("¡Casi! Revisá la ortografía"))
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"Respuesta correcta: "+correctAnswerText(s.lastQ))))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Incorrecto"))
		if answer := correctAnswerText(s.lastQ); answer != "" {
			b.WriteString("\n")
			b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				"Respuesta correcta: "+answer)))
		}
	}

	b.WriteString("\n\n")

	if s.lastQ != nil && s.lastQ.Base().Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(s.lastQ.Base().Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Presioná cualquier tecla para continuar..."))

	return b.String()
}

// correctAnswerText describes the canonical answer for feedback.
func correctAnswerText(q content.Question) string {
	switch q := q.(type) {
	case content.MultipleChoice:
		for _, opt := range q.Options {
			if opt.Correct {
				return opt.Text
			}
		}
	case content.TrueFalse:
		if q.Answer {
			return "Verdadero"
		}
		return "Falso"
	case content.Order:
		return strings.Join(q.CorrectOrder, " → ")
	case content.Match:
		var parts []string
		for _, p := range q.Pairs {
			parts = append(parts, fmt.Sprintf("%s = %s", p.Left, p.Right))
		}
		return strings.Join(parts, ", ")
	case content.FillInBlank:
		return strings.Join(q.Answers, ", ")
	case content.ListenAndWrite:
		return q.Answer
	}
	return ""
}

// renderDefeat renders the out-of-hearts screen. Nothing was saved.
func renderDefeat(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("💔 Te quedaste sin corazones"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Esta sesión no cuenta. El tema te espera para otro intento."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Presioná cualquier tecla para volver al inicio..."))

	return b.String()
}

// renderPersistError renders the failed-save screen with retry options.
func renderPersistError(width int, errMsg string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("No se pudieron guardar los resultados"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(errMsg))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[R] Reintentar"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Esc] Abandonar sin guardar"))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("¿Abandonar la sesión?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Perderás el progreso de esta sesión."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[S] Sí, abandonar"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, seguir entrenando"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Presioná cualquier tecla para volver.", errMsg))
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func hint(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n" + text)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
