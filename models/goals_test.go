package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacroSplit(t *testing.T) {
	protein, fats, carbs := MacroSplit(2000)
	assert.Equal(t, 150, protein)
	assert.Equal(t, 67, fats)
	assert.Equal(t, 200, carbs)
}

func TestMacroSplitZero(t *testing.T) {
	protein, fats, carbs := MacroSplit(0)
	assert.Zero(t, protein)
	assert.Zero(t, fats)
	assert.Zero(t, carbs)
}

func TestMacroSplitFormula(t *testing.T) {
	for _, calories := range []int{1, 137, 1500, 1800, 2200, 3333, 10000} {
		c := float64(calories)
		protein, fats, carbs := MacroSplit(calories)
		assert.Equal(t, int(math.Round(c*0.3/4)), protein, "protein for %d kcal", calories)
		assert.Equal(t, int(math.Round(c*0.3/9)), fats, "fats for %d kcal", calories)
		assert.Equal(t, int(math.Round(c*0.4/4)), carbs, "carbs for %d kcal", calories)
	}
}

func TestDefaultGoals(t *testing.T) {
	g := DefaultGoals()
	assert.Equal(t, Goals{Calories: 2000, Protein: 75, Fats: 60, Carbs: 250, AutoCalculate: true}, g)
}
