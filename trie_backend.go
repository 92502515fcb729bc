package respace

import (
	"fmt"

	"github.com/derekparker/trie"
)

// trieBackend stores words in a prefix trie. HasPrefix is exact, so the
// segmenter can abandon a scan position as soon as the candidate prefix
// leaves the trie.
type trieBackend struct {
	words *trie.Trie
	count int
}

func newTrieBackend() *trieBackend {
	return &trieBackend{
		words: trie.New(),
	}
}

func mustNewTrieBackend() wordIndex {
	return newTrieBackend()
}

func (tb *trieBackend) Insert(word string) {
	if _, found := tb.words.Find(word); found {
		return
	}
	tb.words.Add(word, nil)
	tb.count++
}

func (tb *trieBackend) Contains(word string) bool {
	_, found := tb.words.Find(word)
	return found
}

func (tb *trieBackend) HasPrefix(prefix string) bool {
	return tb.words.HasKeysWithPrefix(prefix)
}

func (tb *trieBackend) Stats() wordIndexStats {
	return wordIndexStats{
		Backend: "trie",
		Words:   tb.count,
	}
}

func (tb *trieBackend) String() string {
	return fmt.Sprintf("Trie(words=%d)", tb.count)
}
