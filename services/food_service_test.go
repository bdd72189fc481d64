package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warriorfdkl/kalogram/apperr"
)

type stubVision struct {
	guess FoodGuess
	err   error
}

func (s stubVision) Recognize(ctx context.Context, imageDataURI string) (FoodGuess, error) {
	return s.guess, s.err
}

const tinyImage = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

func nutritionWithCounter(t *testing.T, calls *atomic.Int64, reply string) *NutritionService {
	t.Helper()
	return newNutritionServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(reply))
	})
}

func TestAnalyzeMergesVisionAndNutrition(t *testing.T) {
	var calls atomic.Int64
	nutrition := nutritionWithCounter(t, &calls, `{
		"calories": 248,
		"totalWeight": 150,
		"totalNutrients": {
			"PROCNT": {"quantity": 46},
			"FAT": {"quantity": 5},
			"CHOCDF": {"quantity": 0}
		}
	}`)
	vision := stubVision{guess: FoodGuess{Food: "grilled chicken breast", WeightGrams: 150}}

	svc := NewFoodService(vision, nutrition)
	before := time.Now()
	result, err := svc.Analyze(context.Background(), tinyImage)
	require.NoError(t, err)

	assert.Equal(t, "grilled chicken breast", result.Name)
	assert.Equal(t, float64(150), result.Weight)
	assert.Equal(t, float64(248), result.Calories)
	assert.Equal(t, float64(46), result.Protein)
	assert.Equal(t, float64(5), result.Fats)
	assert.Equal(t, float64(0), result.Carbs)
	assert.Equal(t, tinyImage, result.ImageURL)
	assert.False(t, result.Timestamp.Before(before), "timestamp must be fresh")
	assert.Equal(t, int64(1), calls.Load())
}

func TestAnalyzeRecognitionFailureSkipsLookup(t *testing.T) {
	var calls atomic.Int64
	nutrition := nutritionWithCounter(t, &calls, `{}`)
	vision := stubVision{err: fmt.Errorf("%w: reply has no weight", apperr.ErrParse)}

	svc := NewFoodService(vision, nutrition)
	_, err := svc.Analyze(context.Background(), tinyImage)

	assert.ErrorIs(t, err, apperr.ErrParse)
	assert.Zero(t, calls.Load(), "nutrition lookup must not run after a parse failure")
}

func TestAnalyzeInvalidImageSkipsEverything(t *testing.T) {
	var calls atomic.Int64
	nutrition := nutritionWithCounter(t, &calls, `{}`)

	svc := NewFoodService(stubVision{}, nutrition)
	_, err := svc.Analyze(context.Background(), "")

	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Zero(t, calls.Load())
}

func TestAnalyzeWeightlessGuessUsesUpstreamWeight(t *testing.T) {
	var gotQuery string
	nutrition := newNutritionServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("ingr")
		_, _ = w.Write([]byte(`{"calories": 52, "totalWeight": 182}`))
	})
	vision := stubVision{guess: FoodGuess{Food: "Apple"}}

	svc := NewFoodService(vision, nutrition)
	result, err := svc.Analyze(context.Background(), tinyImage)
	require.NoError(t, err)

	assert.Equal(t, "Apple", gotQuery, "weightless guess queries the bare label")
	assert.Equal(t, float64(182), result.Weight)
}

func TestAnalyzeQueryFormat(t *testing.T) {
	var gotQuery string
	nutrition := newNutritionServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("ingr")
		_, _ = w.Write([]byte(`{}`))
	})
	vision := stubVision{guess: FoodGuess{Food: "roasted chicken", WeightGrams: 350.4}}

	svc := NewFoodService(vision, nutrition)
	_, err := svc.Analyze(context.Background(), tinyImage)
	require.NoError(t, err)
	assert.Equal(t, "350g roasted chicken", gotQuery)
}

func TestAnalyzeThroughOpenAIProvider(t *testing.T) {
	openai := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "{\"food\": \"grilled chicken breast\", \"weight\": 150}"}}]
		}`))
	}))
	defer openai.Close()
	t.Setenv("OPENAI_BASE_URL", openai.URL)
	t.Setenv("OPENAI_API_KEY", "test-openai-key")

	nutrition := newNutritionServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"calories": 248, "totalNutrients": {"PROCNT": {"quantity": 46}}}`))
	})

	svc := NewFoodService(NewOpenAIVision(), nutrition)
	result, err := svc.Analyze(context.Background(), tinyImage)
	require.NoError(t, err)
	assert.Equal(t, "grilled chicken breast", result.Name)
	assert.Equal(t, float64(248), result.Calories)
}

func TestOpenAIVisionMissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewOpenAIVision().Recognize(context.Background(), tinyImage)
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}
