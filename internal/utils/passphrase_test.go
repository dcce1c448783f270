package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassphrase(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		phrase, err := GeneratePassphrase()
		require.NoError(t, err)

		words := strings.Fields(phrase)
		assert.Len(t, words, PassphraseWordCount)
		for _, w := range words {
			assert.Contains(t, passphraseWords, w)
		}
		seen[phrase] = true
	}
	// 50 draws from a 128^3 space colliding down to a handful would
	// indicate a broken random source.
	assert.Greater(t, len(seen), 40)
}

func TestNormalizePassphrase(t *testing.T) {
	assert.Equal(t, "gold fish drum", NormalizePassphrase("  Gold   FISH\tdrum "))
	assert.Equal(t, "", NormalizePassphrase("   "))
}
