package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/warriorfdkl/kalogram/apperr"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com"
	visionModel          = "gpt-4o-mini"

	visionPrompt = `Look at this photo of food. Reply with a single JSON object ` +
		`of the form {"food": string, "weight": number} where food is the name ` +
		`of the dish and weight is the estimated portion weight in grams. ` +
		`Reply with the JSON object only, no other text.`
)

// OpenAIVision asks a vision-capable chat model for a food label and an
// estimated portion weight.
type OpenAIVision struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenAIVision reads its credential from the environment. The key is
// checked per request so that a missing credential disables recognition
// without taking the whole app down.
func NewOpenAIVision() *OpenAIVision {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIVision{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []chatContent `json:"content"`
}

type chatContent struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (v *OpenAIVision) Recognize(ctx context.Context, imageDataURI string) (FoodGuess, error) {
	if v.apiKey == "" {
		return FoodGuess{}, fmt.Errorf("%w: OPENAI_API_KEY not set", apperr.ErrConfiguration)
	}

	payload := map[string]any{
		"model": visionModel,
		"messages": []chatMessage{{
			Role: "user",
			Content: []chatContent{
				{Type: "text", Text: visionPrompt},
				{Type: "image_url", ImageURL: &chatImageURL{URL: imageDataURI}},
			},
		}},
		"max_tokens": 150,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return FoodGuess{}, fmt.Errorf("%w: failed to marshal vision payload: %v", apperr.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return FoodGuess{}, fmt.Errorf("%w: failed to create vision request: %v", apperr.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return FoodGuess{}, fmt.Errorf("%w: failed to call vision API: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FoodGuess{}, fmt.Errorf("%w: failed to read vision response: %v", apperr.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return FoodGuess{}, fmt.Errorf("%w: vision API error %d: %s", apperr.ErrUpstream, resp.StatusCode, string(body))
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return FoodGuess{}, fmt.Errorf("%w: failed to parse vision JSON: %v", apperr.ErrParse, err)
	}
	if cr.Error != nil {
		return FoodGuess{}, fmt.Errorf("%w: vision API: %s", apperr.ErrUpstream, cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return FoodGuess{}, fmt.Errorf("%w: vision reply has no choices", apperr.ErrParse)
	}

	return parseFoodReply(cr.Choices[0].Message.Content)
}
