package models

import "time"

// AdditionalNutrients holds the secondary nutrients the lookup service
// reports alongside the four tracked macros. Grams except sodium and
// cholesterol, which Edamam reports in milligrams.
type AdditionalNutrients struct {
	Fiber       int `json:"fiber"`
	Sugar       int `json:"sugar"`
	Sodium      int `json:"sodium"`
	Cholesterol int `json:"cholesterol"`
}

// ScanResult is one analyzed food entry: the dish the vision step identified
// plus the nutrition snapshot for the estimated portion. Entries are mutable
// until appended to the history, immutable after.
type ScanResult struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Weight              float64              `json:"weight"` // grams
	Calories            float64              `json:"calories"`
	Protein             float64              `json:"protein"`
	Fats                float64              `json:"fats"`
	Carbs               float64              `json:"carbs"`
	AdditionalNutrients *AdditionalNutrients `json:"additionalNutrients,omitempty"`
	ImageURL            string               `json:"imageUrl,omitempty"` // data URI, not an owned upload
	Timestamp           time.Time            `json:"timestamp"`
}
