package respace

import (
	"fmt"
	"io"
	"strings"
)

// WordReader yields dictionary words one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (word string, err error)
}

// Lexicon is a loaded word knowledge base.
//
// A lexicon is a case-insensitive set of words: every entry is folded to
// lower case on insert and every probe is folded before lookup. Entries are
// kept in an index backend (a prefix trie by default) that additionally
// answers prefix queries, which lets the greedy segmenter stop probing as
// soon as no known word can extend the current candidate.
//
// Loading is not safe for concurrent use; a fully loaded lexicon is
// read-only and may be shared freely between goroutines.
type Lexicon struct {
	index      wordIndex
	Identifier string // Identifies the word list the lexicon was built from
}

// NewLexicon creates an empty lexicon, ready for AddWord.
func NewLexicon() *Lexicon {
	return &Lexicon{
		index:      mustNewTrieBackend(),
		Identifier: "empty",
	}
}

// LoadWordReader builds a lexicon from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package wordlists to parse concrete formats and feed this API.
func LoadWordReader(name string, reader WordReader) (lex *Lexicon, err error) {
	lex = &Lexicon{
		index:      mustNewTrieBackend(),
		Identifier: fmt.Sprintf("wordlist: %s", name),
	}
	var word string
	for {
		word, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lex.AddWord(word)
	}
	stats := lex.index.Stats()
	tracer().Infof("lexicon %q loaded backend=%s words=%d", name, stats.Backend, stats.Words)
	return lex, nil
}

// LoadWordList adds explicit entries from an in-memory slice.
func (lex *Lexicon) LoadWordList(words []string) {
	for _, word := range words {
		lex.AddWord(word)
	}
}

// AddWord registers one word. Surrounding whitespace is trimmed and the word
// is folded to lower case; empty words are ignored.
func (lex *Lexicon) AddWord(word string) {
	if lex.index == nil {
		lex.index = mustNewTrieBackend()
	}
	word = foldASCII(strings.TrimSpace(word))
	if word == "" {
		return
	}
	lex.index.Insert(word)
}

// Contains tests word for membership, ignoring (ASCII) case.
func (lex *Lexicon) Contains(word string) bool {
	if lex == nil || lex.index == nil {
		return false
	}
	return lex.index.Contains(foldASCII(word))
}

// Size returns the number of distinct words in the lexicon.
func (lex *Lexicon) Size() int {
	if lex == nil || lex.index == nil {
		return 0
	}
	return lex.index.Stats().Words
}

// IndexStats reports the backend name and entry count of the underlying
// word index.
func (lex *Lexicon) IndexStats() (backend string, words int) {
	if lex == nil || lex.index == nil {
		return "", 0
	}
	stats := lex.index.Stats()
	return stats.Backend, stats.Words
}

// foldASCII lowercases ASCII letters only. Segmentation slices tokens by
// byte offset, so folding must never change the byte length of a string.
func foldASCII(s string) string {
	folded := []byte(nil)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUpper(c) {
			if folded == nil {
				folded = []byte(s)
			}
			folded[i] = c + 'a' - 'A'
		}
	}
	if folded == nil {
		return s
	}
	return string(folded)
}
