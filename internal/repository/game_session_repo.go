package repository

import (
	"context"

	"tables_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GameSessionRepository stores the full audit record of every accepted
// submission (the leaderboard table only keeps what the ranking needs).
type GameSessionRepository struct {
	db *pgxpool.Pool
}

func NewGameSessionRepository(db *pgxpool.Pool) *GameSessionRepository {
	return &GameSessionRepository{db: db}
}

func (r *GameSessionRepository) Create(ctx context.Context, gs *domain.GameSession) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO game_sessions
		   (user_id, name, score, xp_earned, duration, tier, cells_solved, total_cells, tables_used)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		gs.UserID,
		gs.Name,
		gs.Score,
		gs.XPEarned,
		gs.Duration,
		gs.Tier,
		gs.CellsSolved,
		gs.TotalCells,
		gs.TablesUsed,
	).Scan(&gs.ID, &gs.CreatedAt)
}
