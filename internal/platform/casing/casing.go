// Package casing converts loosely formatted identifiers into PascalCase.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultDelimiter separates words in snake-style identifiers such as
// "ic_arrow_back".
const DefaultDelimiter = "_"

// Pascal converts raw into PascalCase. Words are split on delimiter, on any
// rune that is neither a letter nor a digit, and on lower-to-upper case
// transitions; each word is then title cased and the words are joined.
//
//	Pascal("ic_arrow_back", "_") == "IcArrowBack"
//	Pascal("IC-ARROW back", "_") == "IcArrowBack"
//	Pascal("IcArrowBack", "_")   == "IcArrowBack"
//
// Pascal is pure and idempotent.
func Pascal(raw, delimiter string) string {
	words := Words(raw, delimiter)
	if len(words) == 0 {
		return ""
	}
	// Casers keep state between calls and must not be shared.
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, word := range words {
		b.WriteString(title.String(word))
	}
	return b.String()
}

// Words splits raw into the words Pascal would join.
func Words(raw, delimiter string) []string {
	// Chained transformers buffer input and must not be shared.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, raw)
	if err != nil {
		plain = raw
	}
	segments := []string{plain}
	if delimiter != "" {
		segments = strings.Split(plain, delimiter)
	}
	var words []string
	for _, segment := range segments {
		fields := strings.FieldsFunc(segment, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, field := range fields {
			words = append(words, splitCamel(field)...)
		}
	}
	return words
}

// splitCamel breaks s before an upper case rune that follows a lower case
// rune or a digit.
func splitCamel(s string) []string {
	var words []string
	start := 0
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			words = append(words, s[start:i])
			start = i
		}
		prev = r
	}
	return append(words, s[start:])
}
