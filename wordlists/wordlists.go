package wordlists

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/respace"
)

// Reader streams words from plain word-list sources with one word per line,
// for example the dwyl/english-words list.
//
// Lines are trimmed of surrounding whitespace; blank lines and lines
// starting with '#' are skipped. Words are handed over verbatim (the lexicon
// does its own case folding).
type Reader struct {
	scanner *bufio.Scanner
}

// Load parses word-list data and returns a ready-to-use lexicon.
//
// Example usage:
//
//	f, _ := os.Open("path/to/words.txt")
//	defer f.Close()
//
//	lex, err := wordlists.Load("en", f)
func Load(name string, reader io.Reader) (*respace.Lexicon, error) {
	return respace.LoadWordReader(name, NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next word. It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
