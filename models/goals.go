package models

import "math"

// Goals holds a user's daily nutrition targets. Calories in kcal, macros in
// grams. When AutoCalculate is set the macro targets are derived from the
// calorie target by the caller before the record is persisted.
type Goals struct {
	Calories      int  `json:"calories"`
	Protein       int  `json:"protein"`
	Fats          int  `json:"fats"`
	Carbs         int  `json:"carbs"`
	AutoCalculate bool `json:"autoCalculate"`
}

// DefaultGoals are used until the user saves their own targets.
func DefaultGoals() Goals {
	return Goals{Calories: 2000, Protein: 75, Fats: 60, Carbs: 250, AutoCalculate: true}
}

// MacroSplit derives macro targets from a calorie target: 30% protein,
// 30% fat, 40% carbohydrate, converted at 4 kcal/g for protein and carbs and
// 9 kcal/g for fat.
func MacroSplit(calories int) (protein, fats, carbs int) {
	c := float64(calories)
	protein = int(math.Round(c * 0.3 / 4))
	fats = int(math.Round(c * 0.3 / 9))
	carbs = int(math.Round(c * 0.4 / 4))
	return protein, fats, carbs
}

// DailyTotals is the sum of the tracked macros over one local calendar day.
// Derived from the history, never persisted.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
}
