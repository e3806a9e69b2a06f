package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetLevels lists all level definitions, flagging which ones the caller has
// unlocked. Works without authentication (user level 0 then).
func (h *Handler) GetLevels(c *gin.Context) {
	ctx := c.Request.Context()

	levels, err := h.LevelRepo.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load levels"})
		return
	}

	userLevel := 0
	if userID, ok := getUserID(c); ok {
		if progress, err := h.ProgressRepo.Get(ctx, userID); err == nil {
			userLevel = progress.Level
		}
	}

	type levelView struct {
		Level    int    `json:"level"`
		Name     string `json:"name"`
		MinXP    int64  `json:"min_xp"`
		Unlocked bool   `json:"unlocked"`
		Current  bool   `json:"current"`
	}

	views := make([]levelView, 0, len(levels))
	for _, ld := range levels {
		views = append(views, levelView{
			Level:    ld.Level,
			Name:     ld.Name,
			MinXP:    ld.MinXP,
			Unlocked: ld.Level <= userLevel,
			Current:  ld.Level == userLevel,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"levels":     views,
		"user_level": userLevel,
	})
}

// GetLevel returns one level definition with the caller's unlocked flag.
func (h *Handler) GetLevel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level id"})
		return
	}

	ctx := c.Request.Context()
	ld, err := h.LevelRepo.GetByLevel(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "level not found"})
		return
	}

	userLevel := 0
	if userID, ok := getUserID(c); ok {
		if progress, err := h.ProgressRepo.Get(ctx, userID); err == nil {
			userLevel = progress.Level
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"level":    ld,
		"unlocked": ld.Level <= userLevel,
		"current":  ld.Level == userLevel,
	})
}
