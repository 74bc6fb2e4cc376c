package textstats

import "strings"

// isSpace reports whether r is one of the ASCII whitespace characters
// matched by the `\s` character class: space, \t, \n, \v, \f and \r.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Tokenize splits a line on runs of whitespace. Leading and trailing
// whitespace never produce empty tokens, so a whitespace-only line yields
// no tokens at all. Tokens are not normalised: case and punctuation are kept.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isSpace)
}
