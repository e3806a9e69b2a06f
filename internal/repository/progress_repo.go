package repository

import (
	"context"

	"tables_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProgressRepository struct {
	db *pgxpool.Pool
}

func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Get(ctx context.Context, userID int64) (*domain.UserProgress, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, xp, level, games_played, best_score, current_streak, last_played_at
		 FROM user_progress
		 WHERE user_id = $1`,
		userID,
	)

	var p domain.UserProgress
	if err := row.Scan(
		&p.UserID,
		&p.XP,
		&p.Level,
		&p.GamesPlayed,
		&p.BestScore,
		&p.CurrentStreak,
		&p.LastPlayedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// AddXP credits xp to the user, recomputes the level from level_definitions
// and maintains the daily streak, all in one statement so concurrent
// submissions cannot lose an update. Returns the updated progress.
func (r *ProgressRepository) AddXP(ctx context.Context, userID, xp, gameScore int64) (*domain.UserProgress, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE user_progress p
		 SET xp = p.xp + $2,
		     level = (SELECT MAX(ld.level) FROM level_definitions ld WHERE ld.min_xp <= p.xp + $2),
		     games_played = p.games_played + 1,
		     best_score = GREATEST(p.best_score, $3),
		     current_streak = CASE
		         WHEN p.last_played_at::date = CURRENT_DATE THEN p.current_streak
		         WHEN p.last_played_at::date = CURRENT_DATE - 1 THEN p.current_streak + 1
		         ELSE 1
		     END,
		     last_played_at = now()
		 WHERE p.user_id = $1
		 RETURNING user_id, xp, level, games_played, best_score, current_streak, last_played_at`,
		userID, xp, gameScore,
	)

	var p domain.UserProgress
	if err := row.Scan(
		&p.UserID,
		&p.XP,
		&p.Level,
		&p.GamesPlayed,
		&p.BestScore,
		&p.CurrentStreak,
		&p.LastPlayedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
