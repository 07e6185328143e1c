package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/progression"
	"github.com/nicoespa/mentalgym/internal/quiz"
	"github.com/nicoespa/mentalgym/internal/store"
)

// Outcome is the persisted result of a finished session, including the
// profile changes it caused.
type Outcome struct {
	Summary     Summary
	Profile     store.Profile
	LevelBefore int
	LeveledUp   bool
}

// Orchestrator drives sessions end to end: starting them, routing answers
// into the state machine, and persisting results when a session finishes.
// It holds at most one session at a time.
type Orchestrator struct {
	topics   content.Store
	profiles store.ProfileRepo
	sessions store.SessionRepo
	log      *log.Logger
	now      func() time.Time

	state           *State
	historyWritten  bool
	completedMarked bool
	outcome         *Outcome
}

// NewOrchestrator creates an orchestrator over the given content and
// repositories. A nil logger disables logging.
func NewOrchestrator(topics content.Store, profiles store.ProfileRepo, sessions store.SessionRepo, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Orchestrator{
		topics:   topics,
		profiles: profiles,
		sessions: sessions,
		log:      logger,
		now:      time.Now,
	}
}

// EnsureProfile returns the local profile, creating it on first run.
func (o *Orchestrator) EnsureProfile(ctx context.Context) (store.Profile, error) {
	return o.profiles.Ensure(ctx)
}

// Start begins a session on the given topic. Starting while a session is
// still in progress is an InvalidStateError.
func (o *Orchestrator) Start(ctx context.Context, topicID string) (*State, error) {
	if o.state != nil {
		switch o.state.Mode {
		case ModeAnswering, ModeReviewing, ModeFinalizing:
			return nil, &InvalidStateError{Op: "start session", Mode: o.state.Mode}
		}
	}

	topic, err := o.topics.Topic(topicID)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	o.state = NewState(topic, uuid.NewString())
	o.state.StartTime = o.now()
	o.historyWritten = false
	o.completedMarked = false
	o.outcome = nil
	o.log.Info("session started", "session", o.state.SessionID, "topic", topicID)
	return o.state, nil
}

// Submit routes an answer into the active session. When the answer finishes
// the session, results are persisted before returning; a PersistenceError
// leaves the session in the finalizing mode for RetryFinalize.
func (o *Orchestrator) Submit(ctx context.Context, resp quiz.Response) (quiz.Verdict, error) {
	mode := ModeIdle
	if o.state != nil {
		mode = o.state.Mode
	}
	if mode != ModeAnswering && mode != ModeReviewing {
		return quiz.Verdict{}, &InvalidStateError{Op: "submit answer", Mode: mode}
	}

	verdict := HandleAnswer(o.state, resp)

	switch o.state.Mode {
	case ModeDefeated:
		o.log.Info("session lost", "session", o.state.SessionID, "topic", o.state.Topic.ID)
	case ModeFinalizing:
		if err := o.finalize(ctx); err != nil {
			return verdict, err
		}
	}
	return verdict, nil
}

// RetryFinalize retries persistence after a failed finalization.
func (o *Orchestrator) RetryFinalize(ctx context.Context) error {
	if o.state == nil || o.state.Mode != ModeFinalizing {
		mode := ModeIdle
		if o.state != nil {
			mode = o.state.Mode
		}
		return &InvalidStateError{Op: "retry finalize", Mode: mode}
	}
	return o.finalize(ctx)
}

// Snapshot returns the active session state, or nil when idle.
func (o *Orchestrator) Snapshot() *State {
	return o.state
}

// Outcome returns the result of the last finished session, or nil if none
// has finished since the orchestrator started.
func (o *Orchestrator) Outcome() *Outcome {
	return o.outcome
}

// Abandon discards the active session without persisting anything.
func (o *Orchestrator) Abandon() {
	if o.state == nil {
		return
	}
	o.log.Info("session abandoned", "session", o.state.SessionID, "mode", o.state.Mode.String())
	o.state = nil
	o.historyWritten = false
	o.completedMarked = false
}

// finalize applies the session results to the profile and appends the
// session to history. The history row is written at most once even when
// finalization is retried.
func (o *Orchestrator) finalize(ctx context.Context) error {
	st := o.state
	now := o.now()

	profile, err := o.profiles.Load(ctx)
	if err != nil {
		return &PersistenceError{Op: "finalize session", Err: err}
	}

	levelBefore := profile.Level
	profile.XP += st.XPEarned
	profile.Level = progression.LevelFromXP(profile.XP)
	profile.Streak, profile.LastSessionDay = progression.UpdateStreak(profile.Streak, profile.LastSessionDay, now)

	if !o.historyWritten {
		rec := store.SessionRecord{
			ID:          st.SessionID,
			TopicID:     st.Topic.ID,
			Total:       len(st.Topic.Questions),
			Correct:     st.Correct,
			Stars:       st.Stars,
			XPEarned:    st.XPEarned,
			HeartsLeft:  st.Hearts,
			ReviewCount: st.ReviewAttempts,
			Duration:    now.Sub(st.StartTime),
			FinishedAt:  now,
		}
		if err := o.sessions.Append(ctx, rec); err != nil {
			return &PersistenceError{Op: "finalize session", Err: err}
		}
		o.historyWritten = true
	}

	if !o.completedMarked {
		if err := o.sessions.MarkCompleted(ctx, st.Topic.ID, st.Stars, now); err != nil {
			return &PersistenceError{Op: "finalize session", Err: err}
		}
		o.completedMarked = true
	}

	if err := o.profiles.Save(ctx, profile); err != nil {
		return &PersistenceError{Op: "finalize session", Err: err}
	}

	st.Mode = ModeSuccess
	summary := BuildSummary(st)
	summary.Duration = now.Sub(st.StartTime)
	o.outcome = &Outcome{
		Summary:     *summary,
		Profile:     profile,
		LevelBefore: levelBefore,
		LeveledUp:   profile.Level > levelBefore,
	}
	o.log.Info("session finished",
		"session", st.SessionID,
		"topic", st.Topic.ID,
		"stars", st.Stars,
		"xp", st.XPEarned,
		"streak", profile.Streak,
	)
	return nil
}
