package handlers

import (
	"errors"
	"net/http"

	"tables_webapp/internal/domain"
	"tables_webapp/internal/logger"
	"tables_webapp/internal/repository"
	"tables_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type RegisterRequest struct {
	Username     string `json:"username"`
	PasswordChar string `json:"password_char"`
	DisplayName  string `json:"display_name"`
}

type LoginRequest struct {
	Username     string `json:"username"`
	PasswordChar string `json:"password_char"`
}

// validPasswordChar accepts one visible character from the picker. The limit
// is measured in UTF-16 units, matching what the web client enforces with
// String.length: a plain letter is 1, an emoji outside the BMP is 2, and a
// heart with its variation selector is 2. Byte length would reject every
// emoji (3-4 UTF-8 bytes each).
func validPasswordChar(s string) bool {
	units := 0
	for _, r := range s {
		units++
		if r > 0xFFFF {
			units++
		}
	}
	return units >= 1 && units <= 2
}

// Register creates an account. The "password" is a single character picked
// from a picture grid, so children without a keyboard can log in; it is not a
// real credential and the account holds nothing sensitive.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if req.Username == "" || req.PasswordChar == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password character required"})
		return
	}
	if !validPasswordChar(req.PasswordChar) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be a single character"})
		return
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	user := &domain.User{
		Username:     req.Username,
		DisplayName:  displayName,
		PasswordChar: req.PasswordChar,
	}

	ctx := c.Request.Context()
	if err := h.UserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		logger.Error("failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if req.Username == "" || req.PasswordChar == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password character required"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error("failed to load user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if user.PasswordChar != req.PasswordChar {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	_ = h.UserRepo.TouchLastLogin(ctx, user.ID)

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
		},
	})
}
