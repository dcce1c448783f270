package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const satsPerBTC = 100_000_000

// FormatSats renders an amount with thousands separators, e.g. "1,234,567 sats".
func FormatSats(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	if amount == 1 || amount == -1 {
		return out + " sat"
	}
	return out + " sats"
}

// FormatBTC renders a sats amount as a BTC decimal, e.g. "0.00001234 BTC".
func FormatBTC(amount int64) string {
	whole := amount / satsPerBTC
	frac := amount % satsPerBTC
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%08d BTC", whole, frac)
}
