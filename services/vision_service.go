package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/warriorfdkl/kalogram/apperr"
)

// FoodGuess is the vision step's output: what the dish is and how much of it
// is on the plate. WeightGrams is zero when the provider cannot estimate mass.
type FoodGuess struct {
	Food        string
	WeightGrams float64
}

// VisionProvider identifies the food on a photo, given as a data URI.
type VisionProvider interface {
	Recognize(ctx context.Context, imageDataURI string) (FoodGuess, error)
}

// NewVisionProvider picks the implementation named by VISION_PROVIDER.
func NewVisionProvider() (VisionProvider, error) {
	switch provider := os.Getenv("VISION_PROVIDER"); provider {
	case "", "openai":
		return NewOpenAIVision(), nil
	case "rekognition":
		return NewRekognitionVision()
	default:
		return nil, fmt.Errorf("%w: unknown vision provider %q", apperr.ErrConfiguration, provider)
	}
}

// Earlier prompts asked for free text in this grammar; some models still
// answer with it even when asked for JSON.
var legacyReplyRe = regexp.MustCompile(`(?i)food:\s*(.+?),\s*weight:\s*(-?\d+(?:\.\d+)?)`)

// parseFoodReply parses the model's answer, trying the structured JSON form
// first and the legacy "food: X, weight: N" grammar as a fallback.
func parseFoodReply(raw string) (FoodGuess, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var structured struct {
		Food   string   `json:"food"`
		Weight *float64 `json:"weight"`
	}
	if err := json.Unmarshal([]byte(text), &structured); err == nil {
		if structured.Weight == nil {
			return FoodGuess{}, fmt.Errorf("%w: reply has no weight: %s", apperr.ErrParse, raw)
		}
		return validateGuess(FoodGuess{Food: structured.Food, WeightGrams: *structured.Weight})
	}

	if m := legacyReplyRe.FindStringSubmatch(text); m != nil {
		weight, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return FoodGuess{}, fmt.Errorf("%w: bad weight in reply: %s", apperr.ErrParse, raw)
		}
		return validateGuess(FoodGuess{Food: m[1], WeightGrams: weight})
	}

	return FoodGuess{}, fmt.Errorf("%w: unrecognized reply format: %s", apperr.ErrParse, raw)
}

func validateGuess(g FoodGuess) (FoodGuess, error) {
	g.Food = strings.TrimSpace(g.Food)
	if g.Food == "" {
		return FoodGuess{}, fmt.Errorf("%w: reply has no food label", apperr.ErrParse)
	}
	if g.WeightGrams < 0 {
		return FoodGuess{}, fmt.Errorf("%w: negative weight %v in reply", apperr.ErrParse, g.WeightGrams)
	}
	return g, nil
}
