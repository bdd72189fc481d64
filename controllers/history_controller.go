package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warriorfdkl/kalogram/models"
	"github.com/warriorfdkl/kalogram/services"
)

type HistoryController struct {
	history *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{history: history}
}

// GET /api/history
func (hc *HistoryController) List(c *gin.Context) {
	c.JSON(http.StatusOK, hc.history.List(c.GetInt64("userID")))
}

// POST /api/history
//
// Commits one scan result, possibly edited by the user, to the diary.
func (hc *HistoryController) Save(c *gin.Context) {
	var entry models.ScanResult
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if entry.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if entry.Weight < 0 || entry.Calories < 0 || entry.Protein < 0 || entry.Fats < 0 || entry.Carbs < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nutrition values must be non-negative"})
		return
	}

	id, err := hc.history.Append(c.GetInt64("userID"), entry)
	if err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DELETE /api/history/:id
func (hc *HistoryController) Delete(c *gin.Context) {
	removed, err := hc.history.Delete(c.GetInt64("userID"), c.Param("id"))
	if err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/history
func (hc *HistoryController) Clear(c *gin.Context) {
	if err := hc.history.Clear(c.GetInt64("userID")); err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.Status(http.StatusNoContent)
}
