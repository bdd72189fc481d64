package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warriorfdkl/kalogram/models"
	"github.com/warriorfdkl/kalogram/services"
)

type GoalsController struct {
	goals *services.GoalsService
}

func NewGoalsController(goals *services.GoalsService) *GoalsController {
	return &GoalsController{goals: goals}
}

// GET /api/goals
func (gc *GoalsController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gc.goals.Get(c.GetInt64("userID")))
}

// PUT /api/goals
//
// The auto-calculate derivation happens here, before the store sees the
// record. Omitted macro fields fall back to the remembered manual values, so
// toggling auto-calculate off restores what the user last entered by hand.
func (gc *GoalsController) Update(c *gin.Context) {
	uid := c.GetInt64("userID")

	var req struct {
		Calories      float64  `json:"calories"`
		Protein       *float64 `json:"protein"`
		Fats          *float64 `json:"fats"`
		Carbs         *float64 `json:"carbs"`
		AutoCalculate bool     `json:"autoCalculate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Calories < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calories must be non-negative"})
		return
	}
	for _, v := range []*float64{req.Protein, req.Fats, req.Carbs} {
		if v != nil && *v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "macros must be non-negative"})
			return
		}
	}

	goals := models.Goals{
		Calories:      int(math.Round(req.Calories)),
		AutoCalculate: req.AutoCalculate,
	}
	if req.AutoCalculate {
		goals.Protein, goals.Fats, goals.Carbs = models.MacroSplit(goals.Calories)
	} else {
		manual := gc.goals.ManualMacros(uid)
		goals.Protein = roundOr(req.Protein, manual.Protein)
		goals.Fats = roundOr(req.Fats, manual.Fats)
		goals.Carbs = roundOr(req.Carbs, manual.Carbs)
		if err := gc.goals.RememberManualMacros(uid, services.ManualMacros{
			Protein: goals.Protein, Fats: goals.Fats, Carbs: goals.Carbs,
		}); err != nil {
			status, msg := errorResponse(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
	}

	if err := gc.goals.Set(uid, goals); err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func roundOr(v *float64, fallback int) int {
	if v == nil {
		return fallback
	}
	return int(math.Round(*v))
}
