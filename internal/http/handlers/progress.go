package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProgress returns the caller's XP, level and how far into the current
// level they are.
func (h *Handler) GetProgress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	progress, err := h.ProgressRepo.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "progress not found"})
		return
	}

	current, err := h.LevelRepo.GetByLevel(ctx, progress.Level)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load level"})
		return
	}

	resp := gin.H{
		"progress":      progress,
		"current_level": current,
	}

	// next level is optional: the player may already be at the top
	if next, err := h.LevelRepo.GetByLevel(ctx, progress.Level+1); err == nil {
		span := next.MinXP - current.MinXP
		into := progress.XP - current.MinXP

		percent := 0
		if span > 0 {
			percent = int(into * 100 / span)
		}

		resp["next_level"] = next
		resp["level_progress"] = percent
		resp["xp_for_next_level"] = span
		resp["xp_until_next_level"] = next.MinXP - progress.XP
	}

	c.JSON(http.StatusOK, resp)
}
