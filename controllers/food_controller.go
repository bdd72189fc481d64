package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warriorfdkl/kalogram/services"
)

type FoodController struct {
	food      *services.FoodService
	nutrition *services.NutritionService
}

func NewFoodController(food *services.FoodService, nutrition *services.NutritionService) *FoodController {
	return &FoodController{food: food, nutrition: nutrition}
}

// POST /api/food/analyze  { "image_base64": "data:…" }
func (fc *FoodController) Analyze(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := fc.food.Analyze(c.Request.Context(), req.ImageBase64)
	if err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/food/lookup  { "query": "350g roasted chicken" }
//
// Direct text lookup for manual entry, skipping the vision step.
func (fc *FoodController) Lookup(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rec, err := fc.nutrition.Lookup(c.Request.Context(), req.Query)
	if err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, rec)
}
