package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// PassphraseWordCount is the number of words in a claim passphrase.
const PassphraseWordCount = 3

// passphraseWords is the wordlist claim passphrases are drawn from.
// Words are short, common, and unambiguous when read aloud.
var passphraseWords = []string{
	"acid", "aged", "also", "area", "army", "away", "baby", "back",
	"ball", "band", "bank", "base", "bath", "bear", "beat", "bell",
	"belt", "bird", "blue", "boat", "body", "bone", "book", "born",
	"both", "bowl", "busy", "cake", "calm", "camp", "card", "care",
	"cash", "cast", "cave", "chat", "chip", "city", "claw", "clay",
	"club", "coal", "coat", "code", "coin", "cold", "cook", "cool",
	"cope", "copy", "core", "corn", "cost", "crew", "crop", "dark",
	"data", "dawn", "days", "dead", "deal", "deep", "deer", "desk",
	"dial", "diet", "dish", "door", "dose", "down", "draw", "drop",
	"drum", "dust", "duty", "each", "earn", "ease", "east", "easy",
	"edge", "exit", "face", "fact", "fair", "fall", "farm", "fast",
	"fate", "feed", "feel", "file", "fill", "film", "find", "fine",
	"fire", "firm", "fish", "five", "flat", "flow", "food", "foot",
	"form", "fort", "four", "free", "fuel", "full", "fund", "gain",
	"game", "gate", "gear", "gift", "give", "glad", "goal", "goat",
	"gold", "golf", "good", "gray", "grew", "grow", "gulf", "hair",
}

// GeneratePassphrase returns a space-separated passphrase of
// PassphraseWordCount words drawn with crypto/rand.
func GeneratePassphrase() (string, error) {
	words := make([]string, PassphraseWordCount)
	max := big.NewInt(int64(len(passphraseWords)))
	for i := range words {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate passphrase: %w", err)
		}
		words[i] = passphraseWords[n.Int64()]
	}
	return strings.Join(words, " "), nil
}

// NormalizePassphrase lowercases and collapses whitespace so a claim
// attempt matches regardless of how the words were typed.
func NormalizePassphrase(passphrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(passphrase)), " ")
}
