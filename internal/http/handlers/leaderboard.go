package handlers

import (
	"net/http"
	"strconv"

	"tables_webapp/internal/game"

	"github.com/gin-gonic/gin"
)

const leaderboardSize = 10

// GetLeaderboard returns the top scores for a tier/duration combination.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	tierStr := c.DefaultQuery("tier", string(game.TierStandard))
	tier, err := game.ParseTier(tierStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tier"})
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "5"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration"})
		return
	}

	scores, err := h.ScoreRepo.Top(c.Request.Context(), string(tier), duration, leaderboardSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scores":   scores,
		"tier":     tier,
		"duration": duration,
	})
}
