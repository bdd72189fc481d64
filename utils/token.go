package utils

import (
	"strconv"
	"sync"
	"time"
)

var (
	tokenMu   sync.Mutex
	lastToken int64
)

// NewEntryToken returns a unique millisecond-resolution token for history
// entries. Tokens are strictly increasing within the process, so they double
// as creation order.
func NewEntryToken() string {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastToken {
		now = lastToken + 1
	}
	lastToken = now
	return strconv.FormatInt(now, 10)
}
