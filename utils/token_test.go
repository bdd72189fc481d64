package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntryTokenMonotonic(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 1000; i++ {
		tok := NewEntryToken()
		assert.False(t, seen[tok], "token %q repeated", tok)
		seen[tok] = true
		if prev != "" {
			assert.Greater(t, tok, prev)
		}
		prev = tok
	}
}
