package respace

// mapBackend stores words in a plain hash set. It cannot answer prefix
// queries, so HasPrefix is conservatively true and the segmenter probes
// every end offset. Used as a cross-check for the trie backend.
type mapBackend struct {
	words map[string]struct{}
}

func newMapBackend() *mapBackend {
	return &mapBackend{
		words: make(map[string]struct{}, 1024),
	}
}

func (mb *mapBackend) Insert(word string) {
	mb.words[word] = struct{}{}
}

func (mb *mapBackend) Contains(word string) bool {
	_, found := mb.words[word]
	return found
}

func (mb *mapBackend) HasPrefix(prefix string) bool {
	return true
}

func (mb *mapBackend) Stats() wordIndexStats {
	return wordIndexStats{
		Backend: "map",
		Words:   len(mb.words),
	}
}
