package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/progression"
	"github.com/nicoespa/mentalgym/internal/quiz"
	"github.com/nicoespa/mentalgym/internal/store"
)

type fakeProfiles struct {
	p       store.Profile
	loadErr error
	saveErr error
}

func (f *fakeProfiles) Ensure(ctx context.Context) (store.Profile, error) {
	if f.p.ID == "" {
		f.p = store.Profile{ID: store.LocalProfileID, Level: 1}
	}
	return f.p, nil
}

func (f *fakeProfiles) Load(ctx context.Context) (store.Profile, error) {
	if f.loadErr != nil {
		return store.Profile{}, f.loadErr
	}
	return f.p, nil
}

func (f *fakeProfiles) Save(ctx context.Context, p store.Profile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.p = p
	return nil
}

var (
	_ store.ProfileRepo = (*fakeProfiles)(nil)
	_ store.SessionRepo = (*fakeSessions)(nil)
)

type fakeSessions struct {
	recs      []store.SessionRecord
	completed map[string]int
	markCalls int
	appendErr error
	markErr   error
}

func (f *fakeSessions) Append(ctx context.Context, rec store.SessionRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	for _, r := range f.recs {
		if r.ID == rec.ID {
			return fmt.Errorf("duplicate session id %s", rec.ID)
		}
	}
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeSessions) History(ctx context.Context, limit int) ([]store.SessionRecord, error) {
	return f.recs, nil
}

func (f *fakeSessions) Progress(ctx context.Context) (map[string]store.TopicProgress, error) {
	out := make(map[string]store.TopicProgress, len(f.completed))
	for id, stars := range f.completed {
		out[id] = store.TopicProgress{TopicID: id, Completed: true, BestStars: stars}
	}
	return out, nil
}

func (f *fakeSessions) MarkCompleted(ctx context.Context, topicID string, stars int, now time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markCalls++
	if f.completed == nil {
		f.completed = make(map[string]int)
	}
	if stars > f.completed[topicID] {
		f.completed[topicID] = stars
	}
	return nil
}

func newTestOrchestrator(t *testing.T, n int) (*Orchestrator, *fakeProfiles, *fakeSessions) {
	t.Helper()
	catalog, err := content.NewCatalog([]content.Topic{testTopic(n)})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	profiles := &fakeProfiles{p: store.Profile{ID: store.LocalProfileID, Level: 1}}
	sessions := &fakeSessions{}
	o := NewOrchestrator(catalog, profiles, sessions, nil)
	o.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return o, profiles, sessions
}

func playAll(t *testing.T, o *Orchestrator, answers []bool) error {
	t.Helper()
	for _, a := range answers {
		if _, err := o.Submit(context.Background(), quiz.BoolAnswer{Value: a}); err != nil {
			return err
		}
	}
	return nil
}

func TestStartUnknownTopic(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, 5)

	_, err := o.Start(context.Background(), "nope")
	var nf *content.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestStartGuardsActiveSession(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, 5)
	ctx := context.Background()

	if _, err := o.Start(ctx, "test-topic"); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err := o.Start(ctx, "test-topic")
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("err = %v, want InvalidStateError", err)
	}
}

func TestSubmitWhileIdle(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, 5)

	_, err := o.Submit(context.Background(), quiz.BoolAnswer{Value: true})
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("err = %v, want InvalidStateError", err)
	}
	if ise.Mode != ModeIdle {
		t.Errorf("mode = %s, want idle", ise.Mode)
	}
}

func TestFullSessionPersists(t *testing.T) {
	o, profiles, sessions := newTestOrchestrator(t, 5)
	ctx := context.Background()

	if _, err := o.Start(ctx, "test-topic"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := playAll(t, o, []bool{true, true, true, true, true}); err != nil {
		t.Fatalf("play: %v", err)
	}

	if got := o.Snapshot().Mode; got != ModeSuccess {
		t.Fatalf("mode = %s, want success", got)
	}

	if len(sessions.recs) != 1 {
		t.Fatalf("history len = %d, want 1", len(sessions.recs))
	}
	rec := sessions.recs[0]
	if rec.TopicID != "test-topic" || rec.Correct != 5 || rec.Stars != 3 || rec.XPEarned != 50 {
		t.Errorf("record = %+v", rec)
	}

	if profiles.p.XP != 50 {
		t.Errorf("profile xp = %d, want 50", profiles.p.XP)
	}
	if profiles.p.Streak != 1 {
		t.Errorf("profile streak = %d, want 1", profiles.p.Streak)
	}
	if profiles.p.LastSessionDay != "2026-03-14" {
		t.Errorf("last session day = %q", profiles.p.LastSessionDay)
	}
	if sessions.completed["test-topic"] != 3 {
		t.Errorf("topic completion stars = %d, want 3", sessions.completed["test-topic"])
	}

	out := o.Outcome()
	if out == nil {
		t.Fatal("nil outcome")
	}
	if out.LeveledUp {
		t.Error("50 XP should not level up")
	}
	if out.Summary.Stars != 3 {
		t.Errorf("summary stars = %d, want 3", out.Summary.Stars)
	}
}

func TestSameDaySecondSessionKeepsStreak(t *testing.T) {
	o, profiles, _ := newTestOrchestrator(t, 5)
	ctx := context.Background()
	profiles.p.Streak = 3
	profiles.p.LastSessionDay = "2026-03-14"

	if _, err := o.Start(ctx, "test-topic"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := playAll(t, o, []bool{true, true, true, true, true}); err != nil {
		t.Fatalf("play: %v", err)
	}

	if profiles.p.Streak != 3 {
		t.Errorf("streak = %d, want 3", profiles.p.Streak)
	}
}

func TestLevelUpOnFinalize(t *testing.T) {
	o, profiles, _ := newTestOrchestrator(t, 5)
	ctx := context.Background()
	profiles.p.XP = 980
	profiles.p.Level = progression.LevelFromXP(980)

	if _, err := o.Start(ctx, "test-topic"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := playAll(t, o, []bool{true, true, true, true, true}); err != nil {
		t.Fatalf("play: %v", err)
	}

	if profiles.p.XP != 1030 {
		t.Errorf("xp = %d, want 1030", profiles.p.XP)
	}
	if profiles.p.Level != 2 {
		t.Errorf("level = %d, want 2", profiles.p.Level)
	}
	out := o.Outcome()
	if out == nil || !out.LeveledUp {
		t.Error("expected level-up outcome")
	}
}

func TestDefeatForfeitsPersistence(t *testing.T) {
	o, profiles, sessions := newTestOrchestrator(t, 5)
	ctx := context.Background()

	if _, err := o.Start(ctx, "test-topic"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := playAll(t, o, []bool{false, false, false}); err != nil {
		t.Fatalf("play: %v", err)
	}

	if got := o.Snapshot().Mode; got != ModeDefeated {
		t.Fatalf("mode = %s, want defeated", got)
	}
	if len(sessions.recs) != 0 {
		t.Errorf("defeated session was persisted")
	}
	if profiles.p.XP != 0 || profiles.p.Streak != 0 {
		t.Errorf("defeated session changed profile: %+v", profiles.p)
	}

	// Abandon clears the session and allows a fresh start.
	o.Abandon()
	if o.Snapshot() != nil {
		t.Error("abandon left state behind")
	}
	if _, err := o.Start(ctx, "test-topic"); err != nil {
		t.Errorf("start after abandon: %v", err)
	}
}

func TestFinalizeRetryAppendsHistoryOnce(t *testing.T) {
	o, profiles, sessions := newTestOrchestrator(t, 5)
	ctx := context.Background()

	if _, err := o.Start(ctx, "test-topic"); err != nil {
		t.Fatalf("start: %v", err)
	}

	// History write succeeds but the completion mark fails, so the first
	// finalize attempt errors after the append.
	sessions.markErr = errors.New("disk full")
	err := playAll(t, o, []bool{true, true, true, true, true})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PersistenceError", err)
	}
	if got := o.Snapshot().Mode; got != ModeFinalizing {
		t.Fatalf("mode = %s, want finalizing", got)
	}
	if len(sessions.recs) != 1 {
		t.Fatalf("history len = %d, want 1", len(sessions.recs))
	}
	if profiles.p.XP != 0 {
		t.Errorf("profile saved despite failed finalize")
	}

	sessions.markErr = nil
	if err := o.RetryFinalize(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got := o.Snapshot().Mode; got != ModeSuccess {
		t.Errorf("mode = %s, want success", got)
	}
	// The retry must not append a second history row.
	if len(sessions.recs) != 1 {
		t.Errorf("history len = %d, want 1", len(sessions.recs))
	}
	if profiles.p.XP != 50 {
		t.Errorf("profile xp = %d, want 50", profiles.p.XP)
	}
}

func TestFinalizeRetryMarksCompletionOnce(t *testing.T) {
	o, profiles, sessions := newTestOrchestrator(t, 5)
	ctx := context.Background()

	if _, err := o.Start(ctx, "test-topic"); err != nil {
		t.Fatalf("start: %v", err)
	}

	// The completion mark lands but the profile save fails, so the first
	// finalize attempt errors after MarkCompleted.
	profiles.saveErr = errors.New("disk full")
	err := playAll(t, o, []bool{true, true, true, true, true})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PersistenceError", err)
	}
	if sessions.markCalls != 1 {
		t.Fatalf("mark calls = %d, want 1", sessions.markCalls)
	}

	profiles.saveErr = nil
	if err := o.RetryFinalize(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	// The retry must not mark completion a second time.
	if sessions.markCalls != 1 {
		t.Errorf("mark calls = %d, want 1", sessions.markCalls)
	}
	if sessions.completed["test-topic"] != 3 {
		t.Errorf("topic completion stars = %d, want 3", sessions.completed["test-topic"])
	}
}

func TestRetryFinalizeOutsideFinalizing(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, 5)

	err := o.RetryFinalize(context.Background())
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("err = %v, want InvalidStateError", err)
	}
}
