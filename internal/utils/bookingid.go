package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingID generates a human-readable booking reference like
// BK-M9X3K2A1B7CD: the current millisecond timestamp in uppercase
// base36 plus four random base36 characters. Millisecond resolution
// plus the random tail keeps concurrent submissions distinct.
func NewBookingID() string {
	var b strings.Builder
	b.WriteString("BK-")
	b.WriteString(strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36)))
	for i := 0; i < 4; i++ {
		b.WriteByte(base36Digits[rand.Intn(len(base36Digits))])
	}
	return b.String()
}
