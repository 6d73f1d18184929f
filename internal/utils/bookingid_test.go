package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingIDShape(t *testing.T) {
	id := NewBookingID()
	require.True(t, strings.HasPrefix(id, "BK-"))

	body := strings.TrimPrefix(id, "BK-")
	// Millisecond timestamps encode to 8 base-36 digits for the
	// foreseeable future, plus the 4 random tail characters.
	assert.GreaterOrEqual(t, len(body), 12)
	for _, r := range body {
		assert.Contains(t, base36Digits, string(r))
	}
}

func TestNewBookingIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id := NewBookingID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		time.Sleep(time.Millisecond)
	}
}
