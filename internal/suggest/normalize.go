package suggest

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// folder applies full Unicode case folding, so "ß" matches "ss".
var folder = cases.Fold()

func fold(s string) string {
	return folder.String(s)
}

// Normalize case-folds s and strips separators.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range fold(s) {
		if !isSeparator(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Tokens splits an identifier into case-folded CamelCase tokens.
//   - "CompProperties_Glower" -> ["comp", "properties", "glower"]
//   - "XMLParser" -> ["xml", "parser"]
func Tokens(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, fold(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken splits before an upper-case rune that follows a lower-case
// one, and before the last capital of an acronym followed by lower case.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
