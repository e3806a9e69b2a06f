package repository

import (
	"context"

	"tables_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LevelRepository struct {
	db *pgxpool.Pool
}

func NewLevelRepository(db *pgxpool.Pool) *LevelRepository {
	return &LevelRepository{db: db}
}

func (r *LevelRepository) GetAll(ctx context.Context) ([]domain.LevelDefinition, error) {
	rows, err := r.db.Query(ctx,
		`SELECT level, name, min_xp FROM level_definitions ORDER BY level ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.LevelDefinition
	for rows.Next() {
		var ld domain.LevelDefinition
		if err := rows.Scan(&ld.Level, &ld.Name, &ld.MinXP); err != nil {
			return nil, err
		}
		res = append(res, ld)
	}
	return res, rows.Err()
}

func (r *LevelRepository) GetByLevel(ctx context.Context, level int) (*domain.LevelDefinition, error) {
	var ld domain.LevelDefinition
	err := r.db.QueryRow(ctx,
		`SELECT level, name, min_xp FROM level_definitions WHERE level = $1`,
		level,
	).Scan(&ld.Level, &ld.Name, &ld.MinXP)
	if err != nil {
		return nil, err
	}
	return &ld, nil
}
