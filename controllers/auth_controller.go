package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warriorfdkl/kalogram/config"
	"github.com/warriorfdkl/kalogram/utils"
)

// initDataMaxAge bounds how old a login payload may be before the client has
// to reopen the mini app.
const initDataMaxAge = 24 * time.Hour

// POST /auth/telegram  { "initData": "..." }
//
// Exchanges signed Telegram init data for a session JWT.
func TelegramLogin(c *gin.Context) {
	var req struct {
		InitData string `json:"initData" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	parsed, err := utils.ValidateInitData(req.InitData, config.TelegramBotToken(), initDataMaxAge)
	if err != nil || parsed.User.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid init data"})
		return
	}

	secret := config.JWTSecret()
	if len(secret) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
		return
	}
	token, err := utils.GenerateJWT(parsed.User.ID, secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": parsed.User})
}
