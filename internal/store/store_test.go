package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"users", "session_records", "topic_progress"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestProfileEnsureDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Ensure(ctx)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if p.ID != LocalProfileID {
		t.Errorf("id = %q, want %q", p.ID, LocalProfileID)
	}
	if p.XP != 0 || p.Level != 1 || p.Streak != 0 {
		t.Errorf("defaults = xp %d, level %d, streak %d; want 0, 1, 0", p.XP, p.Level, p.Streak)
	}

	// A second Ensure must not reset an existing profile.
	p.XP = 250
	p.Streak = 2
	p.LastSessionDay = "2026-03-14"
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := repo.Ensure(ctx)
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if again.XP != 250 || again.Streak != 2 {
		t.Errorf("ensure overwrote profile: xp %d, streak %d", again.XP, again.Streak)
	}
}

func TestProfileSaveLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if _, err := repo.Ensure(ctx); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	want := Profile{
		ID:             LocalProfileID,
		XP:             1200,
		Level:          2,
		Streak:         5,
		LastSessionDay: "2026-03-14",
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("load = %+v, want %+v", got, want)
	}
}

func TestSessionAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, SessionRecord{
			ID:         string(rune('a' + i)),
			TopicID:    "creatividad",
			Total:      5,
			Correct:    4 + i%2,
			Stars:      3,
			XPEarned:   50,
			HeartsLeft: 2,
			Duration:   90 * time.Second,
			FinishedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("history len = %d, want 3", len(recs))
	}
	// Most recent first.
	if recs[0].ID != "c" || recs[2].ID != "a" {
		t.Errorf("order = %s..%s, want c..a", recs[0].ID, recs[2].ID)
	}
	if recs[0].Duration != 90*time.Second {
		t.Errorf("duration = %v, want 90s", recs[0].Duration)
	}

	limited, err := repo.History(ctx, 2)
	if err != nil {
		t.Fatalf("history limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestSessionAppendDuplicateID(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	rec := SessionRecord{ID: "dup", TopicID: "libertad", Total: 5, Correct: 5, FinishedAt: time.Now()}
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, rec); err == nil {
		t.Fatal("expected error appending duplicate session id")
	}
}

func TestMarkCompletedKeepsBestStars(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if err := repo.MarkCompleted(ctx, "creatividad", 3, now); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := repo.MarkCompleted(ctx, "creatividad", 1, now.Add(time.Hour)); err != nil {
		t.Fatalf("mark again: %v", err)
	}

	progress, err := repo.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	tp, ok := progress["creatividad"]
	if !ok {
		t.Fatal("missing topic progress")
	}
	if !tp.Completed {
		t.Error("topic not marked completed")
	}
	if tp.BestStars != 3 {
		t.Errorf("best stars = %d, want 3", tp.BestStars)
	}
	if tp.TimesPlayed != 2 {
		t.Errorf("times played = %d, want 2", tp.TimesPlayed)
	}
}
