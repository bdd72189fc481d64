package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/warriorfdkl/kalogram/apperr"
	"github.com/warriorfdkl/kalogram/models"
)

const defaultNutritionBaseURL = "https://api.edamam.com"

// NutritionService resolves a free-text quantity+food phrase against the
// Edamam nutrition-data API.
type NutritionService struct {
	appID, appKey string
	baseURL       string
	client        *http.Client
}

// NewNutritionService initializes the service with credentials and HTTP client.
// EDAMAM_BASE_URL overrides the endpoint for tests.
func NewNutritionService() *NutritionService {
	baseURL := os.Getenv("EDAMAM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultNutritionBaseURL
	}
	return &NutritionService{
		appID:   os.Getenv("EDAMAM_APP_ID"),
		appKey:  os.Getenv("EDAMAM_APP_KEY"),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nutritionDataResponse struct {
	Calories       float64 `json:"calories"`
	TotalWeight    float64 `json:"totalWeight"`
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
	Measures []models.Measure `json:"measures"`
}

// Lookup sends a phrase like "350g roasted chicken" to the nutrition-data
// endpoint and normalizes the reply. Nutrients the upstream omits come back
// as zero; partial data is not an error.
func (s *NutritionService) Lookup(ctx context.Context, query string) (*models.NutritionRecord, error) {
	u := fmt.Sprintf("%s/api/nutrition-data?app_id=%s&app_key=%s&ingr=%s",
		s.baseURL, s.appID, s.appKey, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create nutrition request: %v", apperr.ErrUpstream, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to call nutrition API: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read nutrition response: %v", apperr.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: nutrition API error %d: %s", apperr.ErrUpstream, resp.StatusCode, string(body))
	}

	var nr nutritionDataResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("%w: failed to parse nutrition JSON: %v", apperr.ErrParse, err)
	}

	quantity := func(key string) int {
		return int(math.Round(nr.TotalNutrients[key].Quantity))
	}
	return &models.NutritionRecord{
		Calories: int(math.Round(nr.Calories)),
		Protein:  quantity("PROCNT"),
		Fats:     quantity("FAT"),
		Carbs:    quantity("CHOCDF"),
		AdditionalNutrients: models.AdditionalNutrients{
			Fiber:       quantity("FIBTG"),
			Sugar:       quantity("SUGAR"),
			Sodium:      quantity("NA"),
			Cholesterol: quantity("CHOLE"),
		},
		Measures:    nr.Measures,
		TotalWeight: nr.TotalWeight,
	}, nil
}
