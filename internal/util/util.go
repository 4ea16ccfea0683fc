package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SmartCapitalize trims input, collapses whitespace runs to single spaces and
// title-cases each word ("  red   WINE " -> "Red Wine"). Blank input is returned unchanged.
func SmartCapitalize(input string) string {
	if strings.TrimSpace(input) == "" {
		return input
	}

	words := strings.Fields(input)
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}

	return strings.Join(words, " ")
}
