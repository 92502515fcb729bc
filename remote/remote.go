// Package remote acquires word lists over HTTP.
//
// Acquisition is deliberately kept away from the segmentation core: the
// core only ever sees a loaded lexicon. Callers that must not fail use
// LoadLexiconOrFallback, which degrades to the small built-in list.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/npillmayer/respace"
	"github.com/npillmayer/respace/wordlists"
	"github.com/npillmayer/schuko/tracing"
)

// DefaultWordlistURL points to the dwyl/english-words plain list
// (one word per line, ~466k entries).
const DefaultWordlistURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words.txt"

const defaultTimeout = 10 * time.Second

// maxListBytes caps the downloaded list size. The dwyl list is ~5 MB.
const maxListBytes = 64 << 20

// tracer writes to trace with key 'respace.remote'
func tracer() tracing.Trace {
	return tracing.Select("respace.remote")
}

// LoadLexicon downloads a word list from url and builds a lexicon from it.
//
// The request is bound to ctx and additionally capped by timeout; a zero or
// negative timeout means the 10 second default. Non-2xx responses and
// oversized bodies are errors.
func LoadLexicon(ctx context.Context, url string, timeout time.Duration) (*respace.Lexicon, error) {
	if url == "" {
		url = DefaultWordlistURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building wordlist request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading wordlist from %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("downloading wordlist from %s: unexpected status %s", url, resp.Status)
	}
	body := &io.LimitedReader{R: resp.Body, N: maxListBytes + 1}
	lex, err := wordlists.Load(url, body)
	if err != nil {
		return nil, fmt.Errorf("parsing wordlist from %s: %w", url, err)
	}
	if body.N <= 0 {
		return nil, fmt.Errorf("wordlist from %s exceeds %d bytes", url, maxListBytes)
	}
	return lex, nil
}

// LoadLexiconOrFallback behaves like LoadLexicon but never fails: on any
// acquisition error it returns the built-in fallback lexicon, which is
// small but non-empty.
func LoadLexiconOrFallback(ctx context.Context, url string, timeout time.Duration) *respace.Lexicon {
	lex, err := LoadLexicon(ctx, url, timeout)
	if err != nil {
		tracer().Errorf("wordlist download failed: %v", err)
		tracer().Infof("falling back to built-in word list")
		return wordlists.Fallback()
	}
	return lex
}
