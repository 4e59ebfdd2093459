// Package strutil holds the string helpers shared by the CLI and library
// callers.
package strutil

import (
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cast"
)

var placeholderPattern = regexp.MustCompile(`%(\d+)`)

// Format substitutes %N tokens in template with the Nth value, 1-based.
// Values are rendered with cast.ToString, so numbers and bools come out
// the way fmt would print them. A token past the end of values becomes
// the empty string. There is no escape for a literal %N sequence.
func Format(template string, values ...any) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		index, err := strconv.Atoi(token[1:])
		if err != nil || index < 1 || index > len(values) {
			return ""
		}
		return cast.ToString(values[index-1])
	})
}

// Capitalize renders value as a string and upper-cases its first rune.
// Nil renders as the empty string.
func Capitalize(value any) string {
	if value == nil {
		return ""
	}
	return CapitalizeString(cast.ToString(value))
}

// CapitalizeString is Capitalize for callers that already hold a string.
func CapitalizeString(s string) string {
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}
