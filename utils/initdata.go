package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// InitDataUser is the user object Telegram embeds in init data.
type InitDataUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// InitData is the parsed, signature-checked payload Telegram passes to a
// Mini App session.
type InitData struct {
	QueryID  string
	User     InitDataUser
	AuthDate time.Time
}

// ValidateInitData verifies the init-data signature with the Web App scheme:
// the hash field must equal HMAC-SHA256 over the sorted key=value lines,
// keyed with HMAC-SHA256("WebAppData", botToken). A maxAge of zero skips the
// freshness check.
func ValidateInitData(initData, botToken string, maxAge time.Duration) (*InitData, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("malformed init data: %w", err)
	}
	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, errors.New("init data has no hash")
	}
	values.Del("hash")

	want := hex.EncodeToString(hmacSHA256(webAppSecret(botToken), []byte(checkString(values))))
	if !hmac.Equal([]byte(want), []byte(gotHash)) {
		return nil, errors.New("init data hash mismatch")
	}

	out := &InitData{QueryID: values.Get("query_id")}
	if ad := values.Get("auth_date"); ad != "" {
		sec, err := strconv.ParseInt(ad, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad auth_date: %w", err)
		}
		out.AuthDate = time.Unix(sec, 0)
		if maxAge > 0 && time.Since(out.AuthDate) > maxAge {
			return nil, errors.New("init data expired")
		}
	}
	if userJSON := values.Get("user"); userJSON != "" {
		if err := json.Unmarshal([]byte(userJSON), &out.User); err != nil {
			return nil, fmt.Errorf("bad user payload: %w", err)
		}
	}
	return out, nil
}

// SignInitData computes the Web App hash for the given fields. Used by tests
// and local tooling to mint valid init data.
func SignInitData(values url.Values, botToken string) string {
	values.Del("hash")
	return hex.EncodeToString(hmacSHA256(webAppSecret(botToken), []byte(checkString(values))))
}

func checkString(values url.Values) string {
	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "\n")
}

func webAppSecret(botToken string) []byte {
	return hmacSHA256([]byte("WebAppData"), []byte(botToken))
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
