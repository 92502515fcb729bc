package respace

import (
	"io"
	"testing"
)

type sliceWordReader struct {
	words []string
	index int
}

func (r *sliceWordReader) Next() (string, error) {
	if r.index >= len(r.words) {
		return "", io.EOF
	}
	word := r.words[r.index]
	r.index++
	return word, nil
}

func TestWordReaderAPI(t *testing.T) {
	lex, err := LoadWordReader("stream-words", &sliceWordReader{
		words: []string{"Backyard", "  soccer  ", "", "game"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if lex.Size() != 3 {
		t.Fatalf("expected 3 words, have %d", lex.Size())
	}
	for _, probe := range []string{"backyard", "BACKYARD", "Soccer", "game"} {
		if !lex.Contains(probe) {
			t.Errorf("lexicon should contain %q", probe)
		}
	}
	if lex.Contains("") {
		t.Errorf("empty string must never be a member")
	}
}

func TestLexiconDeduplicates(t *testing.T) {
	lex := NewLexicon()
	lex.LoadWordList([]string{"game", "Game", "GAME"})
	if lex.Size() != 1 {
		t.Fatalf("expected 1 word after dedup, have %d", lex.Size())
	}
}

func TestLexiconIndexStats(t *testing.T) {
	lex := lexiconOf("gold", "fish")
	backend, words := lex.IndexStats()
	if backend != "trie" {
		t.Fatalf("expected trie backend, got %s", backend)
	}
	if words != 2 {
		t.Fatalf("expected 2 words, got %d", words)
	}
}

func TestBackendsAgree(t *testing.T) {
	words := []string{"back", "yard", "base", "ball", "a", "the", "them", "hem"}
	backends := []wordIndex{newTrieBackend(), newMapBackend()}
	for _, backend := range backends {
		for _, w := range words {
			backend.Insert(w)
		}
	}
	tokens := []string{"backyardball", "themhem", "athe", "qzqzqz", "goldfishxyz", ""}
	for _, token := range tokens {
		var results [][]string
		for _, backend := range backends {
			lex := &Lexicon{index: backend}
			results = append(results, lex.Segment(token))
		}
		if len(results[0]) != len(results[1]) {
			t.Fatalf("backends disagree on %q: %v vs %v", token, results[0], results[1])
		}
		for i := range results[0] {
			if results[0][i] != results[1][i] {
				t.Fatalf("backends disagree on %q: %v vs %v", token, results[0], results[1])
			}
		}
	}
}

func TestFoldASCII(t *testing.T) {
	cases := []struct{ input, want string }{
		{"HTML", "html"},
		{"MiXeD123", "mixed123"},
		{"already lower", "already lower"},
		{"Für", "für"}, // non-ASCII bytes untouched
		{"", ""},
	}
	for _, c := range cases {
		if got := foldASCII(c.input); got != c.want {
			t.Errorf("foldASCII(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
