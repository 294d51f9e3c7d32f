// Package normalize provides the text canonicalization used by the theme
// scorer, the amenity inferencer and the entity matcher. Every function here
// is total: any input, including the empty string, yields a usable result and
// never an error.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Text lowercases the input, strips diacritics, collapses punctuation and
// runs of whitespace to single spaces and trims the ends.
func Text(raw string) string {
	if raw == "" {
		return ""
	}

	folded, _, err := transform.String(stripMarks, raw)
	if err != nil {
		folded = raw
	}

	var builder strings.Builder

	builder.Grow(len(folded))

	lastSpace := true

	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)

			lastSpace = false

			continue
		}

		if !lastSpace {
			builder.WriteRune(' ')

			lastSpace = true
		}
	}

	return strings.TrimSpace(builder.String())
}

// URL reduces a free-text website value to a comparable form: scheme and
// "www." prefix removed, trailing slash removed, lowercased.
func URL(raw string) string {
	url := strings.ToLower(strings.TrimSpace(raw))
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "www.")

	return strings.TrimSuffix(url, "/")
}

// Words splits normalized text into its words.
func Words(raw string) []string {
	return strings.Fields(Text(raw))
}

// SignificantWords returns the normalized words longer than two runes,
// filtering out articles, ampersand leftovers and similar noise.
func SignificantWords(raw string) []string {
	words := Words(raw)
	significant := words[:0]

	for _, word := range words {
		if len([]rune(word)) > 2 {
			significant = append(significant, word)
		}
	}

	return significant
}
