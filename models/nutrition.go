package models

// Measure is one serving unit the nutrition API knows for a food.
type Measure struct {
	URI    string  `json:"uri"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// NutritionRecord is the normalized reply of the nutrition lookup. Macro
// values are rounded to the nearest gram/kcal; fields the upstream omitted
// stay zero rather than failing the lookup.
type NutritionRecord struct {
	Calories            int                 `json:"calories"`
	Protein             int                 `json:"protein"`
	Fats                int                 `json:"fats"`
	Carbs               int                 `json:"carbs"`
	AdditionalNutrients AdditionalNutrients `json:"additionalNutrients"`
	Measures            []Measure           `json:"measures,omitempty"`
	TotalWeight         float64             `json:"weight"` // upstream's own measured total, grams
}
