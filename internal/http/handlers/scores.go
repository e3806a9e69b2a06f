package handlers

import (
	"errors"
	"net/http"

	"tables_webapp/internal/game"
	"tables_webapp/internal/logger"
	"tables_webapp/internal/service"
	"tables_webapp/internal/session"

	"github.com/gin-gonic/gin"
)

type SubmitScoreRequest struct {
	Name           string `json:"name"`
	Score          int64  `json:"score"`
	Duration       int    `json:"duration"`
	Tier           string `json:"tier"`
	SolvedCells    int    `json:"solved_cells"`
	TotalCells     int    `json:"total_possible_cells"`
	SelectedTables []int  `json:"selected_tables"`
	SessionToken   string `json:"session_token"`
}

// SubmitScore accepts one finished game. Guests may submit; authenticated
// users additionally earn XP.
func (h *Handler) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	tier, err := game.ParseTier(req.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tier"})
		return
	}

	submitReq := service.SubmitRequest{
		Name:           req.Name,
		Score:          req.Score,
		Duration:       req.Duration,
		Tier:           tier,
		SolvedCells:    req.SolvedCells,
		TotalCells:     req.TotalCells,
		SelectedTables: req.SelectedTables,
		SessionToken:   req.SessionToken,
	}
	if userID, ok := getUserID(c); ok {
		submitReq.UserID = &userID
	}

	res, err := h.SubmitService.Submit(c.Request.Context(), submitReq)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrTokenRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "session token required"})
		case errors.Is(err, session.ErrTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session token"})
		case errors.Is(err, service.ErrInvalidDuration),
			errors.Is(err, service.ErrCellsMismatch),
			errors.Is(err, service.ErrScoreTooHigh):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("score submission failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save score"})
		}
		return
	}

	if h.Ticker != nil {
		h.Ticker.BroadcastScore(res.Entry)
	}

	resp := gin.H{
		"success":   true,
		"score":     res.Entry,
		"xp_earned": res.XPEarned,
	}
	if res.Progress != nil {
		resp["progress"] = res.Progress
	}
	c.JSON(http.StatusOK, resp)
}
