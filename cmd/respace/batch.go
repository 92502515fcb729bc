package main

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/respace"
)

// processFile reads a JSON array of records from inPath, rewrites each
// record's "title" field through the lexicon, and writes the records to
// outPath as indented UTF-8 JSON. It returns the number of records written.
func processFile(lex *respace.Lexicon, inPath, outPath string) (int, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", inPath, err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("decoding %s: %w", inPath, err)
	}
	for _, record := range records {
		if record == nil { // a JSON null element decodes to a nil map
			continue
		}
		title, _ := record["title"].(string)
		record["title"] = capitalizeFirst(lex.Separate(title))
	}
	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", outPath, err)
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		out.Close()
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return len(records), nil
}

// capitalizeFirst uppercases the leading rune only. Everything behind it
// keeps the casing produced by segmentation.
func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
