package wordlists

import (
	_ "embed"
	"strings"

	"github.com/npillmayer/respace"
)

//go:embed fallback.txt
var fallbackList string

// Fallback returns the small built-in lexicon. It is a last resort for
// callers whose primary word list could not be acquired; segmentation stays
// defined, it just fires less often.
func Fallback() *respace.Lexicon {
	lex, err := Load("builtin fallback", strings.NewReader(fallbackList))
	if err != nil {
		panic(err) // an in-memory list cannot fail to scan
	}
	return lex
}
