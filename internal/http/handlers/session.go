package handlers

import (
	"net/http"

	"tables_webapp/internal/metrics"

	"github.com/gin-gonic/gin"
)

// StartSession issues the single-use token a client must present with its
// score. This is the only endpoint that puts tokens into the registry.
func (h *Handler) StartSession(c *gin.Context) {
	token, err := h.Tokens.Issue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	metrics.TokensIssued.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"session_token": token,
	})
}
