package repository

import (
	"context"
	"errors"

	"tables_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUsernameTaken = errors.New("username already taken")

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, COALESCE(display_name, username), password_char, created_at, last_login
		 FROM users
		 WHERE username = $1`,
		username,
	)

	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.DisplayName,
		&u.PasswordChar,
		&u.CreatedAt,
		&u.LastLogin,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, COALESCE(display_name, username), password_char, created_at, last_login
		 FROM users
		 WHERE id = $1`,
		id,
	)

	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.DisplayName,
		&u.PasswordChar,
		&u.CreatedAt,
		&u.LastLogin,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts the user and seeds an empty progress row in one transaction.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, display_name, password_char)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO NOTHING
		 RETURNING id`,
		u.Username,
		u.DisplayName,
		u.PasswordChar,
	).Scan(&u.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUsernameTaken
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO user_progress (user_id, xp, level) VALUES ($1, 0, 1)`,
		u.ID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = now() WHERE id = $1`,
		id,
	)
	return err
}
