/*
Package respace reconstructs readable text from smashed-together,
identifier-like strings.

Given an input such as "HTMLParserGame2000" and a lexicon of known words,
the package first splits the input at orthographic boundaries (case
transitions and letter/digit transitions) and then decomposes any remaining
run of concatenated letters into known words by greedy longest-match
scanning:

	lex := ... // a loaded *Lexicon
	s := lex.Separate("HTMLParserGame2000")
	// s == "HTML Parser Game 2000"

The lexicon is a case-insensitive word set behind a small index backend
(a prefix trie by default). Loading word lists from concrete sources is
the job of adapter packages; see package wordlists for plain
one-word-per-line lists and package remote for downloading a list over
HTTP with a built-in fallback.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package respace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'respace'
func tracer() tracing.Trace {
	return tracing.Select("respace")
}
