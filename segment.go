package respace

import "strings"

// Segment decomposes token into a sequence of known words.
//
// A token that is itself a known word is returned unchanged as a single
// segment. Otherwise the token is scanned left to right: at each position
// the longest substring that is a known word becomes the next segment and
// the scan resumes behind it. The first position with no match at all ends
// the scan, and everything from there to the end of the token becomes one
// unmatched segment. This is a policy choice: retrying one character
// further would shred unknown strings piecemeal instead of keeping them
// intact.
//
// If scanning did not actually split anything, the original token is
// returned as the only segment. Concatenating the returned segments always
// reconstructs token exactly; original casing is preserved.
//
// Example, with "gold" and "fish" in the lexicon:
//
//	"goldfishxyz" => [ "gold", "fish", "xyz" ]
func (lex *Lexicon) Segment(token string) []string {
	if lex == nil || lex.index == nil {
		return []string{token}
	}
	if lex.Contains(token) {
		return []string{token}
	}
	folded := foldASCII(token)
	var segments []string
	pos := 0
	for pos < len(token) {
		matchEnd := -1
		for end := pos + 1; end <= len(token); end++ {
			probe := folded[pos:end]
			if lex.index.Contains(probe) {
				matchEnd = end // longest match wins; length is a total order
			}
			if end < len(token) && !lex.index.HasPrefix(probe) {
				break // no known word extends probe
			}
		}
		if matchEnd < 0 {
			segments = append(segments, token[pos:])
			break
		}
		segments = append(segments, token[pos:matchEnd])
		pos = matchEnd
	}
	if len(segments) <= 1 {
		return []string{token}
	}
	return segments
}

// SeparateWords splits text at orthographic boundaries and decomposes each
// resulting token through Segment.
//
// Example:
//
//	"HTMLParserGame2000" => [ "HTML", "Parser", "Game", "2000" ]
func (lex *Lexicon) SeparateWords(text string) []string {
	tokens := SplitBoundaries(text)
	if len(tokens) == 0 {
		return nil
	}
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if lex.Contains(token) {
			words = append(words, token)
			continue
		}
		words = append(words, lex.Segment(token)...)
	}
	return words
}

// Separate returns text with word boundaries restored as single spaces.
// Example:
//
//	"HTMLParserGame2000" => "HTML Parser Game 2000".
func (lex *Lexicon) Separate(text string) string {
	return strings.Join(lex.SeparateWords(text), " ")
}
