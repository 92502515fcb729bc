package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/respace"
)

func TestProcessFile(t *testing.T) {
	lex := respace.NewLexicon()
	lex.LoadWordList([]string{"html", "parser", "game", "backyard", "soccer"})

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	outPath := filepath.Join(dir, "out.json")
	input := `[
		{"title": "HTMLParserGame2000", "year": 2000},
		{"title": "backyardsoccer"},
		{"year": 1999}
	]`
	if err := os.WriteFile(inPath, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := processFile(lex, inPath, outPath)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("expected 3 records, got %d", n)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatal(err)
	}
	if got := records[0]["title"]; got != "HTML Parser Game 2000" {
		t.Errorf("title 0 = %v, want 'HTML Parser Game 2000'", got)
	}
	if got := records[1]["title"]; got != "Backyard soccer" {
		t.Errorf("title 1 = %v, want 'Backyard soccer'", got)
	}
	// Records without a title get an empty one.
	if got := records[2]["title"]; got != "" {
		t.Errorf("title 2 = %v, want empty string", got)
	}
}

func TestProcessFileNullRecord(t *testing.T) {
	lex := respace.NewLexicon()
	lex.LoadWordList([]string{"gold", "fish"})

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	outPath := filepath.Join(dir, "out.json")
	input := `[{"title": "goldfish"}, null, {"title": "goldfishxyz"}]`
	if err := os.WriteFile(inPath, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := processFile(lex, inPath, outPath)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("expected 3 records, got %d", n)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatal(err)
	}
	if records[1] != nil {
		t.Errorf("null record should stay null, got %v", records[1])
	}
	if got := records[2]["title"]; got != "Gold fish xyz" {
		t.Errorf("title 2 = %v, want 'Gold fish xyz'", got)
	}
}

func TestProcessFileMissingInput(t *testing.T) {
	lex := respace.NewLexicon()
	if _, err := processFile(lex, filepath.Join(t.TempDir(), "nope.json"), "out.json"); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}

func TestCapitalizeFirst(t *testing.T) {
	cases := []struct{ input, want string }{
		{"gold fish", "Gold fish"},
		{"HTML parser", "HTML parser"},
		{"1 st place", "1 st place"},
		{"", ""},
	}
	for _, c := range cases {
		if got := capitalizeFirst(c.input); got != c.want {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
