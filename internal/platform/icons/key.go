package icons

import (
	"strings"

	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/casing"
)

// ParseKey normalizes a raw identifier such as "ic_arrow_back" to its
// canonical key.
func ParseKey(raw string) Key {
	return Key(casing.Pascal(raw, casing.DefaultDelimiter))
}

// Canonical reports whether k is non-empty and already normalized.
func (k Key) Canonical() bool {
	return k != "" && ParseKey(string(k)) == k
}

// SnakeName returns the snake_case identifier for k, e.g. "ic_arrow_back".
func SnakeName(k Key) string {
	words := casing.Words(string(k), "")
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, casing.DefaultDelimiter)
}
