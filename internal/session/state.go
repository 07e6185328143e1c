package session

import (
	"time"

	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/quiz"
)

// MaxHearts is the number of hearts a session starts with.
const MaxHearts = 3

// Mode identifies the phase of a session.
type Mode int

const (
	ModeIdle       Mode = iota // no active session
	ModeAnswering              // serving first-pass questions
	ModeReviewing              // replaying failed questions
	ModeFinalizing             // results pending persistence
	ModeSuccess                // finished and persisted
	ModeDefeated               // ran out of hearts
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAnswering:
		return "answering"
	case ModeReviewing:
		return "reviewing"
	case ModeFinalizing:
		return "finalizing"
	case ModeSuccess:
		return "success"
	case ModeDefeated:
		return "defeated"
	}
	return "unknown"
}

// State tracks the runtime state of an active session.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Topic is the topic being played.
	Topic content.Topic

	// Index is the position in Topic.Questions during the first pass.
	Index int

	// Hearts is the remaining hearts. The session is lost at zero.
	Hearts int

	// Correct is the count of first-pass correct answers.
	Correct int

	// Stars is the star count earned so far. It never decreases.
	Stars int

	// XPEarned is the XP accumulated from correct answers.
	XPEarned int

	// Mode is the current session phase.
	Mode Mode

	// Failed is the FIFO queue of questions missed on the first pass.
	// Each question appears at most once.
	Failed []content.Question

	// FailedIDs tracks question ids already queued for review.
	FailedIDs map[string]bool

	// ReviewAttempts counts answers given during review, right or wrong.
	ReviewAttempts int

	// ReviewCleared counts review questions answered correctly.
	ReviewCleared int

	// LastVerdict is the verdict for the most recent answer, for feedback display.
	LastVerdict *quiz.Verdict

	// LastQuestion is the question the most recent answer was for.
	LastQuestion content.Question

	// OpenResponses holds recorded free-text answers keyed by question id.
	OpenResponses map[string]string

	// StartTime is when the session began.
	StartTime time.Time
}

// NewState creates a session state at the first question of the topic.
func NewState(topic content.Topic, sessionID string) *State {
	return &State{
		SessionID:     sessionID,
		Topic:         topic,
		Hearts:        MaxHearts,
		Mode:          ModeAnswering,
		FailedIDs:     make(map[string]bool),
		OpenResponses: make(map[string]string),
		StartTime:     time.Now(),
	}
}

// CurrentQuestion returns the question awaiting an answer, or false when
// the session is not accepting answers.
func CurrentQuestion(state *State) (content.Question, bool) {
	switch state.Mode {
	case ModeAnswering:
		if state.Index < len(state.Topic.Questions) {
			return state.Topic.Questions[state.Index], true
		}
	case ModeReviewing:
		if len(state.Failed) > 0 {
			return state.Failed[0], true
		}
	}
	return nil, false
}
