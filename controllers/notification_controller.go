package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warriorfdkl/kalogram/models"
	"github.com/warriorfdkl/kalogram/services"
	"github.com/warriorfdkl/kalogram/utils"
)

// MessageSender is the slice of the Telegram service the relay needs.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// NotificationController is the save-result relay: it verifies the caller's
// init data, then forwards a diary summary to their chat.
type NotificationController struct {
	sender   MessageSender
	botToken string
}

func NewNotificationController(sender MessageSender, botToken string) *NotificationController {
	return &NotificationController{sender: sender, botToken: botToken}
}

type saveResultRequest struct {
	InitData string            `json:"initData"`
	UserID   int64             `json:"userId"`
	FoodData models.ScanResult `json:"foodData"`
}

// POST /api/save-result
func (nc *NotificationController) SaveResult(c *gin.Context) {
	var req saveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if _, err := utils.ValidateInitData(req.InitData, nc.botToken, 0); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid init data"})
		return
	}

	summary := services.FormatFoodSummary(req.FoodData)
	if err := nc.sender.SendMessage(c.Request.Context(), req.UserID, summary); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
