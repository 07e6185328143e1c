package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Append(ctx context.Context, rec SessionRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_records(id, topic_id, total, correct, stars, xp_earned, hearts_left, review_count, duration_ms, finished_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.TopicID,
		rec.Total,
		rec.Correct,
		rec.Stars,
		rec.XPEarned,
		rec.HeartsLeft,
		rec.ReviewCount,
		rec.Duration.Milliseconds(),
		rec.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

func (r *sessionRepo) History(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := `
		SELECT id, topic_id, total, correct, stars, xp_earned, hearts_left, review_count, duration_ms, finished_at
		FROM session_records
		ORDER BY finished_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec        SessionRecord
			durationMS int64
			finished   string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.TopicID,
			&rec.Total,
			&rec.Correct,
			&rec.Stars,
			&rec.XPEarned,
			&rec.HeartsLeft,
			&rec.ReviewCount,
			&durationMS,
			&finished,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(timeLayout, finished); err == nil {
			rec.FinishedAt = t
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (r *sessionRepo) MarkCompleted(ctx context.Context, topicID string, stars int, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO topic_progress(topic_id, completed, best_stars, times_played, last_played)
		VALUES(?, 1, ?, 1, ?)
		ON CONFLICT(topic_id) DO UPDATE SET
			completed = 1,
			best_stars = CASE
				WHEN excluded.best_stars > topic_progress.best_stars THEN excluded.best_stars
				ELSE topic_progress.best_stars
			END,
			times_played = topic_progress.times_played + 1,
			last_played = excluded.last_played
	`, topicID, stars, now.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("mark topic completed: %w", err)
	}
	return nil
}

func (r *sessionRepo) Progress(ctx context.Context) (map[string]TopicProgress, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT topic_id, completed, best_stars, times_played, last_played
		FROM topic_progress
	`)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	out := map[string]TopicProgress{}
	for rows.Next() {
		var (
			tp         TopicProgress
			completed  int
			lastPlayed string
		)
		if err := rows.Scan(&tp.TopicID, &completed, &tp.BestStars, &tp.TimesPlayed, &lastPlayed); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}
		tp.Completed = completed == 1
		if t, err := time.Parse(timeLayout, lastPlayed); err == nil {
			tp.LastPlayed = t
		}
		out[tp.TopicID] = tp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}
	return out, nil
}
