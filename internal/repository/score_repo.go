package repository

import (
	"context"

	"tables_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ScoreRepository struct {
	db *pgxpool.Pool
}

func NewScoreRepository(db *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Create inserts a leaderboard row.
func (r *ScoreRepository) Create(ctx context.Context, s *domain.Score) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO scores (user_id, name, score, duration, tier, cells_solved, total_cells, tables_used)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		s.UserID,
		s.Name,
		s.Score,
		s.Duration,
		s.Tier,
		s.CellsSolved,
		s.TotalCells,
		s.TablesUsed,
	).Scan(&s.ID, &s.CreatedAt)
}

// Top returns the best scores for a tier/duration combination, highest first.
func (r *ScoreRepository) Top(ctx context.Context, tier string, duration, limit int) ([]domain.Score, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, COALESCE(name, 'guest'), score, duration, tier,
		        cells_solved, total_cells, COALESCE(tables_used, '{}'), created_at
		 FROM scores
		 WHERE tier = $1 AND duration = $2
		 ORDER BY score DESC
		 LIMIT $3`,
		tier, duration, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Score
	for rows.Next() {
		var s domain.Score
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Name,
			&s.Score,
			&s.Duration,
			&s.Tier,
			&s.CellsSolved,
			&s.TotalCells,
			&s.TablesUsed,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
