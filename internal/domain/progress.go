package domain

import "time"

// UserProgress - накопленный прогресс игрока
type UserProgress struct {
	UserID        int64      `db:"user_id" json:"user_id"`
	XP            int64      `db:"xp" json:"xp"`
	Level         int        `db:"level" json:"level"`
	GamesPlayed   int64      `db:"games_played" json:"games_played"`
	BestScore     int64      `db:"best_score" json:"best_score"`
	CurrentStreak int        `db:"current_streak" json:"current_streak"`
	LastPlayedAt  *time.Time `db:"last_played_at" json:"last_played_at,omitempty"`
}

// LevelDefinition - порог уровня
type LevelDefinition struct {
	Level int    `db:"level" json:"level"`
	Name  string `db:"name" json:"name"`
	MinXP int64  `db:"min_xp" json:"min_xp"`
}
