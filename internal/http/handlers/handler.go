package handlers

import (
	"tables_webapp/internal/repository"
	"tables_webapp/internal/service"
	"tables_webapp/internal/session"
	"tables_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB            *pgxpool.Pool
	Tokens        *session.Registry
	UserRepo      *repository.UserRepository
	ScoreRepo     *repository.ScoreRepository
	ProgressRepo  *repository.ProgressRepository
	LevelRepo     *repository.LevelRepository
	SubmitService *service.SubmitService
	Ticker        *ws.Hub
}

func NewHandler(db *pgxpool.Pool, tokens *session.Registry, ticker *ws.Hub) *Handler {
	scoreRepo := repository.NewScoreRepository(db)
	sessionRepo := repository.NewGameSessionRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	return &Handler{
		DB:            db,
		Tokens:        tokens,
		UserRepo:      repository.NewUserRepository(db),
		ScoreRepo:     scoreRepo,
		ProgressRepo:  progressRepo,
		LevelRepo:     repository.NewLevelRepository(db),
		SubmitService: service.NewSubmitService(tokens, scoreRepo, sessionRepo, progressRepo),
		Ticker:        ticker,
	}
}

// getUserID извлекает user_id из контекста Gin
func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
