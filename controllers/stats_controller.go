package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warriorfdkl/kalogram/services"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// GET /api/stats/today
func (sc *StatsController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, sc.stats.TodayTotals(c.GetInt64("userID"), time.Now()))
}
