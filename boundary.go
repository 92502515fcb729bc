package respace

import "strings"

// SplitBoundaries cuts text into tokens at orthographic boundaries.
//
// Four separator-insertion rules are applied in order, each one to the
// result of the previous:
//
//  1. lowercase letter followed by an uppercase letter   "myVar"      => "my Var"
//  2. uppercase letter followed by uppercase+lowercase   "HTMLParser" => "HTML Parser"
//  3. letter followed by a digit                         "version1"   => "version 1"
//  4. digit followed by a letter                         "1stPlace"   => "1 st Place"
//
// Afterwards runs of separators are collapsed, leading/trailing separators
// trimmed, and empty tokens dropped. Classification is ASCII-only; any
// other byte is carried through tokens verbatim and never creates a
// boundary. An input without transitions comes back as a single token;
// empty input yields nil.
func SplitBoundaries(text string) []string {
	if text == "" {
		return nil
	}
	s := insertSeparators(text, func(prev, cur, next byte) bool {
		return isLower(prev) && isUpper(cur)
	})
	s = insertSeparators(s, func(prev, cur, next byte) bool {
		return isUpper(prev) && isUpper(cur) && isLower(next)
	})
	s = insertSeparators(s, func(prev, cur, next byte) bool {
		return isLetter(prev) && isDigit(cur)
	})
	s = insertSeparators(s, func(prev, cur, next byte) bool {
		return isDigit(prev) && isLetter(cur)
	})
	return splitSeparated(s)
}

// insertSeparators inserts a space before every byte cur for which
// boundary(prev, cur, next) holds. next is 0 at the end of the string.
func insertSeparators(s string, boundary func(prev, cur, next byte) bool) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		if i > 0 {
			var next byte
			if i+1 < len(s) {
				next = s[i+1]
			}
			if boundary(s[i-1], s[i], next) {
				b.WriteByte(' ')
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// splitSeparated splits on single spaces, dropping empty tokens. This also
// collapses runs of spaces and trims the ends.
func splitSeparated(s string) []string {
	parts := strings.Split(s, " ")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLetter(c byte) bool { return isLower(c) || isUpper(c) }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
