package domain

import "time"

// Score - одна строка лидерборда
type Score struct {
	ID          int64     `db:"id" json:"id"`
	UserID      *int64    `db:"user_id" json:"user_id,omitempty"`
	Name        string    `db:"name" json:"name"`
	Score       int64     `db:"score" json:"score"`
	Duration    int       `db:"duration" json:"duration"`
	Tier        string    `db:"tier" json:"tier"`
	CellsSolved int       `db:"cells_solved" json:"cells_solved"`
	TotalCells  int       `db:"total_cells" json:"total_cells"`
	TablesUsed  []int     `db:"tables_used" json:"tables_used"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GameSession - полная запись завершённой партии (аудит, не лидерборд)
type GameSession struct {
	ID          int64     `db:"id" json:"id"`
	UserID      *int64    `db:"user_id" json:"user_id,omitempty"`
	Name        string    `db:"name" json:"name"`
	Score       int64     `db:"score" json:"score"`
	XPEarned    int64     `db:"xp_earned" json:"xp_earned"`
	Duration    int       `db:"duration" json:"duration"`
	Tier        string    `db:"tier" json:"tier"`
	CellsSolved int       `db:"cells_solved" json:"cells_solved"`
	TotalCells  int       `db:"total_cells" json:"total_cells"`
	TablesUsed  []int     `db:"tables_used" json:"tables_used"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
