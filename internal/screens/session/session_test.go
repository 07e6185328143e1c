package session

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nicoespa/mentalgym/internal/content"
	sess "github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/store"
)

func testCatalog(t *testing.T) content.Store {
	t.Helper()
	topic := content.Topic{
		ID:         "respiracion",
		Title:      "Respiración",
		Icon:       "🫁",
		Difficulty: content.TierBeginner,
		Questions: []content.Question{
			content.TrueFalse{
				Info:      content.Info{ID: "q1", Prompt: "¿Verdadero o falso?", XPReward: 10},
				Statement: "Respirar hondo calma la mente.",
				Answer:    true,
			},
			content.TrueFalse{
				Info:      content.Info{ID: "q2", Prompt: "¿Verdadero o falso?", XPReward: 10},
				Statement: "Contener la respiración relaja.",
				Answer:    false,
			},
		},
	}
	catalog, err := content.NewCatalog([]content.Topic{topic})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return catalog
}

func startedScreen(t *testing.T) (*SessionScreen, *sess.Orchestrator) {
	t.Helper()
	st, err := store.Open("file:screen_test_" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	orch := sess.NewOrchestrator(testCatalog(t), st.ProfileRepo(), st.SessionRepo(), nil)
	if _, err := orch.EnsureProfile(context.Background()); err != nil {
		t.Fatalf("ensure profile: %v", err)
	}
	if _, err := orch.Start(context.Background(), "respiracion"); err != nil {
		t.Fatalf("start: %v", err)
	}
	return New(orch), orch
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// press sends a key and runs any command it produced, feeding resulting
// messages back into the screen.
func press(t *testing.T, s *SessionScreen, msg tea.KeyPressMsg) *SessionScreen {
	t.Helper()
	updated, cmd := s.Update(msg)
	scr := updated.(*SessionScreen)
	if cmd == nil {
		return scr
	}
	out := cmd()
	if out == nil {
		return scr
	}
	switch out.(type) {
	case answerResultMsg, retryResultMsg:
		updated, _ = scr.Update(out)
		scr = updated.(*SessionScreen)
	}
	return scr
}

func TestChoiceQuestionInitAndAdvance(t *testing.T) {
	topic := content.Topic{
		ID:         "atencion",
		Title:      "Atención",
		Icon:       "🎯",
		Difficulty: content.TierBeginner,
		Questions: []content.Question{
			content.MultipleChoice{
				Info: content.Info{ID: "m1", Prompt: "Elegí la correcta", XPReward: 10},
				Options: []content.Option{
					{ID: "a", Text: "uno", Correct: true},
					{ID: "b", Text: "dos"},
				},
			},
			content.TrueFalse{
				Info:      content.Info{ID: "m2", Prompt: "¿Verdadero o falso?", XPReward: 10},
				Statement: "La atención se entrena.",
				Answer:    true,
			},
		},
	}
	catalog, err := content.NewCatalog([]content.Topic{topic})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	st, err := store.Open("file:screen_test_" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	orch := sess.NewOrchestrator(catalog, st.ProfileRepo(), st.SessionRepo(), nil)
	if _, err := orch.EnsureProfile(context.Background()); err != nil {
		t.Fatalf("ensure profile: %v", err)
	}
	if _, err := orch.Start(context.Background(), "atencion"); err != nil {
		t.Fatalf("start: %v", err)
	}

	s := New(orch)
	// Init must be safe on a choice question, which has no visible input.
	if cmd := s.Init(); cmd != nil {
		cmd()
	}

	s = press(t, s, keyPress('1')) // pick option a
	if !s.showingFeedback {
		t.Fatal("expected feedback after choosing an option")
	}

	// Dismissing hands over to the true/false question without crashing.
	s = press(t, s, tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.showingFeedback {
		t.Fatal("expected feedback dismissed")
	}
	if orch.Snapshot().Index != 1 {
		t.Errorf("expected index 1, got %d", orch.Snapshot().Index)
	}
}

func TestCorrectAnswerShowsFeedback(t *testing.T) {
	s, _ := startedScreen(t)

	s = press(t, s, keyPress('v'))

	if !s.showingFeedback {
		t.Fatal("expected feedback overlay after answering")
	}
	if !strings.Contains(s.View(80, 24), "¡Correcto!") {
		t.Error("expected correct feedback in view")
	}
}

func TestWrongAnswerShowsCorrection(t *testing.T) {
	s, orch := startedScreen(t)

	s = press(t, s, keyPress('f')) // wrong, answer is true

	view := s.View(80, 24)
	if !strings.Contains(view, "Incorrecto") {
		t.Error("expected incorrect feedback in view")
	}
	if !strings.Contains(view, "Verdadero") {
		t.Error("expected the correct answer in feedback")
	}
	if orch.Snapshot().Hearts != 2 {
		t.Errorf("expected 2 hearts, got %d", orch.Snapshot().Hearts)
	}
}

func TestFeedbackDismissAdvances(t *testing.T) {
	s, orch := startedScreen(t)

	s = press(t, s, keyPress('v'))                       // q1 correct
	s = press(t, s, tea.KeyPressMsg{Code: tea.KeyEnter}) // dismiss feedback
	if s.showingFeedback {
		t.Fatal("expected feedback dismissed")
	}
	if orch.Snapshot().Index != 1 {
		t.Errorf("expected index 1, got %d", orch.Snapshot().Index)
	}
}

func TestPerfectSessionFinishes(t *testing.T) {
	s, orch := startedScreen(t)

	s = press(t, s, keyPress('v'))                       // q1 correct
	s = press(t, s, tea.KeyPressMsg{Code: tea.KeyEnter}) // dismiss
	s = press(t, s, keyPress('f'))                       // q2 correct
	s = press(t, s, tea.KeyPressMsg{Code: tea.KeyEnter}) // dismiss, triggers summary transition

	if orch.Snapshot().Mode != sess.ModeSuccess {
		t.Fatalf("expected success mode, got %s", orch.Snapshot().Mode)
	}
	out := orch.Outcome()
	if out == nil {
		t.Fatal("expected an outcome")
	}
	if out.Summary.XPEarned != 20 {
		t.Errorf("expected 20 XP, got %d", out.Summary.XPEarned)
	}
}

func TestEscShowsQuitConfirm(t *testing.T) {
	s, orch := startedScreen(t)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*SessionScreen)

	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	if !strings.Contains(s.View(80, 24), "¿Abandonar la sesión?") {
		t.Error("expected quit confirm dialog in view")
	}

	// Declining keeps the session running.
	s = press(t, s, keyPress('n'))
	if s.confirmQuit {
		t.Error("expected confirm dismissed")
	}
	if orch.Snapshot().Mode != sess.ModeAnswering {
		t.Errorf("expected answering mode, got %s", orch.Snapshot().Mode)
	}
}

func TestReviewBannerShown(t *testing.T) {
	s, orch := startedScreen(t)

	s = press(t, s, keyPress('f'))                       // q1 wrong, queued for review
	s = press(t, s, tea.KeyPressMsg{Code: tea.KeyEnter}) // dismiss
	s = press(t, s, keyPress('f'))                       // q2 correct
	s = press(t, s, tea.KeyPressMsg{Code: tea.KeyEnter}) // dismiss, review begins

	if orch.Snapshot().Mode != sess.ModeReviewing {
		t.Fatalf("expected reviewing mode, got %s", orch.Snapshot().Mode)
	}
	if !strings.Contains(s.View(80, 24), "REPASO") {
		t.Error("expected review banner in view")
	}
}
