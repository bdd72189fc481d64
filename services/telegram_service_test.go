package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warriorfdkl/kalogram/apperr"
	"github.com/warriorfdkl/kalogram/models"
)

func TestTelegramSendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()
	t.Setenv("TELEGRAM_API_BASE_URL", ts.URL)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	svc := NewTelegramService()
	require.NoError(t, svc.SendMessage(context.Background(), 99281932, "hello"))

	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, float64(99281932), gotBody["chat_id"])
	assert.Equal(t, "hello", gotBody["text"])
}

func TestTelegramSendMessageUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
	}))
	defer ts.Close()
	t.Setenv("TELEGRAM_API_BASE_URL", ts.URL)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	err := NewTelegramService().SendMessage(context.Background(), 1, "hello")
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestTelegramSendMessageMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	err := NewTelegramService().SendMessage(context.Background(), 1, "hello")
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestFormatFoodSummary(t *testing.T) {
	text := FormatFoodSummary(models.ScanResult{
		Name: "Борщ", Weight: 320, Calories: 250, Protein: 12, Fats: 9, Carbs: 30,
	})

	assert.Contains(t, text, "🥗 Блюдо: Борщ")
	assert.Contains(t, text, "⚖️ Вес: 320г")
	assert.Contains(t, text, "🔥 Калории: 250 ккал")
	assert.Contains(t, text, "🥩 Белки: 12г")
	assert.Contains(t, text, "🥑 Жиры: 9г")
	assert.Contains(t, text, "🍚 Углеводы: 30г")
}
