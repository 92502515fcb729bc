package respace

type wordIndexStats struct {
	Backend string
	Words   int
}

// wordIndex is the internal backend abstraction for word-set storage.
// Implementations receive pre-folded (lowercase) words.
type wordIndex interface {
	Insert(word string)
	Contains(word string) bool
	HasPrefix(prefix string) bool
	Stats() wordIndexStats
}
