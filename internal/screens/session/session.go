package session

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/quiz"
	"github.com/nicoespa/mentalgym/internal/router"
	"github.com/nicoespa/mentalgym/internal/screen"
	"github.com/nicoespa/mentalgym/internal/screens/summary"
	sess "github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/ui/components"
	"github.com/nicoespa/mentalgym/internal/ui/layout"
)

// SessionScreen implements screen.Screen for the active training session.
// The orchestrator owns the rules; this screen only collects answers and
// renders verdicts.
type SessionScreen struct {
	orch *sess.Orchestrator

	// Per-question input state, rebuilt by prepareQuestion.
	curID     string
	input     components.TextInput
	cursor    int
	picked    []string          // order: sequence chosen so far
	remaining []string          // order: items not yet picked
	lefts     []string          // match: left items, assigned in order
	matchIdx  int               // match: index of the left item being assigned
	rights    []string          // match: right-hand pool
	used      map[string]bool   // match: rights already assigned
	matches   map[string]string // match: assignments so far
	blankVals []string          // fill-in-blank: values collected so far

	showingFeedback bool
	verdict         quiz.Verdict
	lastQ           content.Question
	awaiting        bool
	confirmQuit     bool
	defeated        bool
	persistErr      string
	errMsg          string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscInterceptor = (*SessionScreen)(nil)

// New creates a session screen over an already started orchestrator session.
func New(orch *sess.Orchestrator) *SessionScreen {
	s := &SessionScreen{orch: orch, input: components.NewTextInput("", 0)}
	if q, ok := sess.CurrentQuestion(orch.Snapshot()); ok {
		s.prepareQuestion(q)
	}
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SessionScreen) Title() string {
	st := s.orch.Snapshot()
	if st == nil {
		return "Sesión"
	}
	return st.Topic.Title
}

// InterceptEsc keeps esc inside the screen so quitting goes through the
// confirmation dialog instead of the default pop.
func (s *SessionScreen) InterceptEsc() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "S", Description: "Abandonar"},
			{Key: "N", Description: "Seguir"},
		}
	case s.persistErr != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Reintentar"},
			{Key: "Esc", Description: "Abandonar"},
		}
	case s.defeated, s.showingFeedback:
		return []layout.KeyHint{
			{Key: "cualquier tecla", Description: "Continuar"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Responder"},
		{Key: "Esc", Description: "Salir"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerResultMsg:
		return s.handleAnswerResult(msg)

	case retryResultMsg:
		return s.handleRetryResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to the text input when a typing question is active.
	if s.textActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// textActive reports whether keystrokes should go to the text input.
func (s *SessionScreen) textActive() bool {
	if s.showingFeedback || s.confirmQuit || s.defeated || s.persistErr != "" || s.awaiting {
		return false
	}
	q, ok := sess.CurrentQuestion(s.orch.Snapshot())
	if !ok {
		return false
	}
	switch q.(type) {
	case content.Open, content.ListenAndWrite, content.FillInBlank:
		return true
	}
	return false
}

// prepareQuestion resets the input state for a freshly served question.
// The text input is rebuilt for every variant so Init never touches a
// zero-value model.
func (s *SessionScreen) prepareQuestion(q content.Question) {
	s.curID = q.Base().ID
	s.cursor = 0
	s.input = components.NewTextInput("", 0)

	switch q := q.(type) {
	case content.Open:
		s.input = components.NewTextInput(q.Placeholder, 0)
	case content.ListenAndWrite:
		s.input = components.NewTextInput("Escribí lo que escuchaste...", 0)
	case content.FillInBlank:
		s.blankVals = nil
	case content.Order:
		s.picked = nil
		s.remaining = append([]string(nil), q.Items...)
	case content.Match:
		s.lefts = nil
		s.rights = nil
		for _, p := range q.Pairs {
			s.lefts = append(s.lefts, p.Left)
		}
		// Rights in reverse so correct pairs don't line up visually.
		for i := len(q.Pairs) - 1; i >= 0; i-- {
			s.rights = append(s.rights, q.Pairs[i].Right)
		}
		s.matchIdx = 0
		s.used = make(map[string]bool)
		s.matches = make(map[string]string)
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state, any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "s", "S", "y", "Y":
			s.orch.Abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.persistErr != "" {
		switch key {
		case "r", "R":
			return s, s.retryFinalize()
		case "esc":
			s.orch.Abandon()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
		return s, nil
	}

	if s.defeated {
		s.orch.Abandon()
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}

	if s.showingFeedback {
		return s.dismissFeedback()
	}

	if s.awaiting {
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	q, ok := sess.CurrentQuestion(s.orch.Snapshot())
	if !ok {
		return s, nil
	}

	switch q := q.(type) {
	case content.MultipleChoice:
		return s.keyMultipleChoice(q, key)
	case content.TrueFalse:
		return s.keyTrueFalse(key)
	case content.Open, content.ListenAndWrite:
		if key == "enter" {
			if s.input.Value() == "" {
				return s, nil
			}
			return s, s.submit(quiz.TextAnswer{Text: s.input.Value()})
		}
	case content.FillInBlank:
		return s.keyFillInBlank(q, key, msg)
	case content.Order:
		return s.keyOrder(key)
	case content.Match:
		return s.keyMatch(q, key)
	}

	// Forward remaining keys to the text input.
	if s.textActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) keyMultipleChoice(q content.MultipleChoice, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(q.Options) {
			s.cursor = idx
			return s, s.submit(quiz.OptionAnswer{OptionID: q.Options[idx].ID})
		}
	case "enter":
		return s, s.submit(quiz.OptionAnswer{OptionID: q.Options[s.cursor].ID})
	}
	return s, nil
}

func (s *SessionScreen) keyTrueFalse(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k", "down", "j":
		s.cursor = 1 - s.cursor
	case "v", "V":
		return s, s.submit(quiz.BoolAnswer{Value: true})
	case "f", "F":
		return s, s.submit(quiz.BoolAnswer{Value: false})
	case "enter":
		return s, s.submit(quiz.BoolAnswer{Value: s.cursor == 0})
	}
	return s, nil
}

func (s *SessionScreen) keyFillInBlank(q content.FillInBlank, key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		s.blankVals = append(s.blankVals, s.input.Value())
		s.input.Reset()
		if len(s.blankVals) < len(q.Blanks) {
			return s, nil
		}
		return s, s.submit(quiz.BlanksAnswer{Values: s.blankVals})
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) keyOrder(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.remaining)-1 {
			s.cursor++
		}
	case "backspace":
		// Undo the last pick.
		if len(s.picked) > 0 {
			last := s.picked[len(s.picked)-1]
			s.picked = s.picked[:len(s.picked)-1]
			s.remaining = append(s.remaining, last)
		}
	case "enter":
		if len(s.remaining) == 0 {
			return s, nil
		}
		item := s.remaining[s.cursor]
		s.picked = append(s.picked, item)
		s.remaining = append(s.remaining[:s.cursor], s.remaining[s.cursor+1:]...)
		if s.cursor >= len(s.remaining) && s.cursor > 0 {
			s.cursor--
		}
		if len(s.remaining) == 0 {
			return s, s.submit(quiz.OrderAnswer{Items: s.picked})
		}
	}
	return s, nil
}

func (s *SessionScreen) keyMatch(q content.Match, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rights)-1 {
			s.cursor++
		}
	case "enter":
		if s.matchIdx >= len(s.lefts) {
			return s, nil
		}
		right := s.rights[s.cursor]
		if s.used[right] {
			return s, nil
		}
		s.used[right] = true
		s.matches[s.lefts[s.matchIdx]] = right
		s.matchIdx++
		if s.matchIdx == len(s.lefts) {
			return s, s.submit(quiz.MatchAnswer{Matches: s.matches})
		}
	}
	return s, nil
}

// submit routes the response through the orchestrator.
func (s *SessionScreen) submit(resp quiz.Response) tea.Cmd {
	st := s.orch.Snapshot()
	if q, ok := sess.CurrentQuestion(st); ok {
		s.lastQ = q
	}
	s.awaiting = true
	return func() tea.Msg {
		verdict, err := s.orch.Submit(context.Background(), resp)
		return answerResultMsg{Verdict: verdict, Err: err}
	}
}

func (s *SessionScreen) handleAnswerResult(msg answerResultMsg) (screen.Screen, tea.Cmd) {
	s.awaiting = false

	if msg.Err != nil {
		var perr *sess.PersistenceError
		if errors.As(msg.Err, &perr) {
			// The answer counted; only saving the results failed.
			s.persistErr = perr.Error()
			return s, nil
		}
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.verdict = msg.Verdict
	s.showingFeedback = true
	return s, nil
}

// dismissFeedback moves on after the verdict overlay.
func (s *SessionScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false

	st := s.orch.Snapshot()
	switch st.Mode {
	case sess.ModeAnswering, sess.ModeReviewing:
		if q, ok := sess.CurrentQuestion(st); ok {
			s.prepareQuestion(q)
			return s, s.input.Init()
		}
	case sess.ModeDefeated:
		s.defeated = true
	case sess.ModeSuccess:
		return s.finishToSummary()
	}
	return s, nil
}

func (s *SessionScreen) retryFinalize() tea.Cmd {
	return func() tea.Msg {
		return retryResultMsg{Err: s.orch.RetryFinalize(context.Background())}
	}
}

func (s *SessionScreen) handleRetryResult(msg retryResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.persistErr = msg.Err.Error()
		return s, nil
	}
	s.persistErr = ""
	return s.finishToSummary()
}

// finishToSummary swaps this screen for the summary, keeping the stack depth
// so one esc from the summary lands back on the topic list.
func (s *SessionScreen) finishToSummary() (screen.Screen, tea.Cmd) {
	outcome := s.orch.Outcome()
	return s, tea.Batch(
		func() tea.Msg { return screen.ProfileUpdatedMsg{Profile: outcome.Profile} },
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: summary.New(outcome)} },
	)
}
