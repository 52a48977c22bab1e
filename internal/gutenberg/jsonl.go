package gutenberg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
)

// bookJSON is the offline corpus file format, one book per line.
type bookJSON struct {
	GutenbergID int64  `json:"gutenberg_id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Text        string `json:"text"`
}

// LoadFromJSONL loads books from a JSONL corpus file with proper error
// handling. Malformed lines are logged and skipped rather than aborting.
func LoadFromJSONL(path string) ([]corpus.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var books []corpus.Book
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var bj bookJSON
		if err := json.Unmarshal([]byte(line), &bj); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}

		books = append(books, corpus.Book{
			GutenbergID: bj.GutenbergID,
			Title:       bj.Title,
			Author:      bj.Author,
			Lines:       corpus.SplitLines(bj.Text),
		})
	}

	return books, nil
}

// SaveToJSONL writes books to a JSONL corpus file, one book per line.
func SaveToJSONL(path string, books []corpus.Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, b := range books {
		bj := bookJSON{
			GutenbergID: b.GutenbergID,
			Title:       b.Title,
			Author:      b.Author,
			Text:        b.Text(),
		}
		if err := enc.Encode(bj); err != nil {
			return fmt.Errorf("encode book %d: %w", b.GutenbergID, err)
		}
	}

	return nil
}
