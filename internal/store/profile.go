package store

import (
	"context"
	"database/sql"
	"fmt"
)

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Ensure(ctx context.Context) (Profile, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users(id, xp, level, streak, last_session_day)
		VALUES(?, 0, 1, 0, '')
		ON CONFLICT(id) DO NOTHING
	`, LocalProfileID)
	if err != nil {
		return Profile{}, fmt.Errorf("ensure profile: %w", err)
	}
	return r.Load(ctx)
}

func (r *profileRepo) Load(ctx context.Context) (Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, xp, level, streak, last_session_day
		FROM users
		WHERE id = ?
	`, LocalProfileID)

	var p Profile
	if err := row.Scan(&p.ID, &p.XP, &p.Level, &p.Streak, &p.LastSessionDay); err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

func (r *profileRepo) Save(ctx context.Context, p Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET xp = ?, level = ?, streak = ?, last_session_day = ?, updated_at = datetime('now')
		WHERE id = ?
	`, p.XP, p.Level, p.Streak, p.LastSessionDay, LocalProfileID)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("save profile: no profile row")
	}
	return nil
}
