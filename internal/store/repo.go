package store

import (
	"context"
	"time"
)

// timeLayout is the timestamp format stored in TEXT columns.
const timeLayout = "2006-01-02T15:04:05Z07:00"

// LocalProfileID is the row id of the single local profile.
const LocalProfileID = "local"

// Profile is the persistent learner profile.
type Profile struct {
	ID             string
	XP             int
	Level          int
	Streak         int
	LastSessionDay string
}

// SessionRecord is one finished session appended to history.
type SessionRecord struct {
	ID          string
	TopicID     string
	Total       int
	Correct     int
	Stars       int
	XPEarned    int
	HeartsLeft  int
	ReviewCount int
	Duration    time.Duration
	FinishedAt  time.Time
}

// TopicProgress tracks per-topic completion across sessions.
type TopicProgress struct {
	TopicID     string
	Completed   bool
	BestStars   int
	TimesPlayed int
	LastPlayed  time.Time
}

// ProfileRepo manages the single local learner profile.
type ProfileRepo interface {
	// Ensure returns the profile, creating it with defaults on first run.
	Ensure(ctx context.Context) (Profile, error)

	// Load returns the current profile.
	Load(ctx context.Context) (Profile, error)

	// Save overwrites the stored profile.
	Save(ctx context.Context, p Profile) error
}

// SessionRepo manages session history and per-topic progress.
type SessionRepo interface {
	// Append stores a finished session exactly once; appending an id
	// that already exists is an error.
	Append(ctx context.Context, rec SessionRecord) error

	// History returns finished sessions, most recent first.
	// limit 0 means unlimited.
	History(ctx context.Context, limit int) ([]SessionRecord, error)

	// MarkCompleted records a successful run of the topic.
	MarkCompleted(ctx context.Context, topicID string, stars int, now time.Time) error

	// Progress returns per-topic progress keyed by topic id.
	Progress(ctx context.Context) (map[string]TopicProgress, error)
}
