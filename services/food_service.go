package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/warriorfdkl/kalogram/models"
	"github.com/warriorfdkl/kalogram/utils"
)

// FoodService chains the vision provider and the nutrition lookup into one
// scan: photo in, ScanResult out.
type FoodService struct {
	vision    VisionProvider
	nutrition *NutritionService
}

func NewFoodService(vision VisionProvider, nutrition *NutritionService) *FoodService {
	return &FoodService{vision: vision, nutrition: nutrition}
}

// Analyze runs the two-step pipeline: identify the dish and estimated
// portion weight from the photo, then resolve "{weight}g {food}" against the
// nutrition lookup. Any step failing aborts the whole scan; there are no
// retries.
func (s *FoodService) Analyze(ctx context.Context, image string) (*models.ScanResult, error) {
	dataURI, err := utils.NormalizeImage(image)
	if err != nil {
		return nil, err
	}

	guess, err := s.vision.Recognize(ctx, dataURI)
	if err != nil {
		return nil, err
	}

	query := guess.Food
	if guess.WeightGrams > 0 {
		query = fmt.Sprintf("%dg %s", int(math.Round(guess.WeightGrams)), guess.Food)
	}
	rec, err := s.nutrition.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}

	weight := guess.WeightGrams
	if weight == 0 {
		weight = rec.TotalWeight
	}

	additional := rec.AdditionalNutrients
	return &models.ScanResult{
		Name:                guess.Food,
		Weight:              weight,
		Calories:            float64(rec.Calories),
		Protein:             float64(rec.Protein),
		Fats:                float64(rec.Fats),
		Carbs:               float64(rec.Carbs),
		AdditionalNutrients: &additional,
		ImageURL:            dataURI,
		Timestamp:           time.Now(),
	}, nil
}
