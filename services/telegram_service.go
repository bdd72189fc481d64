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
	"github.com/warriorfdkl/kalogram/models"
)

const defaultTelegramBaseURL = "https://api.telegram.org"

// TelegramService sends chat messages through the Bot API. One attempt per
// message, no retry; a failed send surfaces to the relay caller.
type TelegramService struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewTelegramService reads the bot token from the environment.
// TELEGRAM_API_BASE_URL overrides the endpoint for tests.
func NewTelegramService() *TelegramService {
	baseURL := os.Getenv("TELEGRAM_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultTelegramBaseURL
	}
	return &TelegramService{
		token:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage posts a sendMessage call for the given chat.
func (s *TelegramService) SendMessage(ctx context.Context, chatID int64, text string) error {
	if s.token == "" {
		return fmt.Errorf("%w: TELEGRAM_BOT_TOKEN not set", apperr.ErrConfiguration)
	}

	payload := map[string]any{"chat_id": chatID, "text": text}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", apperr.ErrUpstream, err)
	}

	u := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: failed to create bot request: %v", apperr.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to call bot API: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: bot API error %d: %s", apperr.ErrUpstream, resp.StatusCode, string(body))
	}
	return nil
}

// FormatFoodSummary renders the diary-entry message the bot sends after a
// save. Wording matches the mini app.
func FormatFoodSummary(food models.ScanResult) string {
	return fmt.Sprintf(
		"🍽 Новая запись в дневнике питания:\n\n"+
			"🥗 Блюдо: %s\n"+
			"⚖️ Вес: %.0fг\n"+
			"🔥 Калории: %.0f ккал\n"+
			"🥩 Белки: %.0fг\n"+
			"🥑 Жиры: %.0fг\n"+
			"🍚 Углеводы: %.0fг",
		food.Name, food.Weight, food.Calories, food.Protein, food.Fats, food.Carbs)
}
