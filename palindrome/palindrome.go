// Package palindrome reports whether text reads identically forward and backward.
package palindrome

import (
	"strings"
	"unicode"
)

// Normalize strips everything except letters and digits and lowercases the rest.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Check reports whether the normalized form of s is a palindrome.
// Empty or all-non-alphanumeric input is trivially a palindrome.
func Check(s string) bool {
	runes := []rune(Normalize(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
