package http

import (
	"time"

	"tables_webapp/internal/config"
	"tables_webapp/internal/http/handlers"
	"tables_webapp/internal/http/middleware"
	"tables_webapp/internal/session"
	"tables_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, tokens *session.Registry, cfg *config.Config, version string) {
	ticker := ws.NewHub()
	h := handlers.NewHandler(db, tokens, ticker)
	healthHandler := handlers.NewHealthHandler(db, version)

	apiRateWindow := time.Duration(cfg.APIRateWindowSeconds) * time.Second
	scoreRateWindow := time.Duration(cfg.ScoreRateWindowSeconds) * time.Second

	// without Redis, fall back to the in-process limiter
	apiRL := middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow)
	scoreRL := middleware.ScoreRateLimit(cfg.ScoreRateLimit, scoreRateWindow)
	if cfg.RedisAddr == "" {
		apiRL = middleware.SimpleRateLimit(cfg.APIRateLimit, apiRateWindow)
		scoreRL = middleware.SimpleRateLimit(cfg.ScoreRateLimit, scoreRateWindow)
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(apiRL)
	{
		// Auth
		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/login", h.Login)

		// Game session token (the only source of submission tokens)
		v1.POST("/session/start", h.StartSession)

		// Score submission: guests allowed, JWT picked up when present
		v1.POST("/scores", scoreRL, middleware.OptionalJWT(), h.SubmitScore)

		// Leaderboard and levels
		v1.GET("/leaderboard", h.GetLeaderboard)
		v1.GET("/levels", middleware.OptionalJWT(), h.GetLevels)
		v1.GET("/levels/:id", middleware.OptionalJWT(), h.GetLevel)

		// Account
		v1.GET("/me", middleware.JWT(), h.Me)
		v1.GET("/user/progress", middleware.JWT(), h.GetProgress)
	}

	// Live leaderboard ticker
	r.GET("/ws", func(c *gin.Context) {
		ticker.Serve(c.Writer, c.Request)
	})
}
