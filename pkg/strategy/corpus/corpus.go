package corpus

import (
	"errors"
	"strings"
)

// Book represents a loaded public-domain text with its metadata.
// Lines preserve the original line ordering and are not mutated after load.
type Book struct {
	GutenbergID int64
	Title       string
	Author      string // may be empty when the catalog has no author record
	Lines       []string
}

// Validate checks that the book carries the fields the pipeline requires.
// A missing author is allowed and passes through as an empty string.
func (b *Book) Validate() error {
	if b.GutenbergID <= 0 {
		return errors.New("book gutenberg id is required")
	}

	if strings.TrimSpace(b.Title) == "" {
		return errors.New("book title is required")
	}

	if len(b.Lines) == 0 {
		return errors.New("book has no text lines")
	}

	return nil
}

// Text joins the raw lines back into a single body, mainly for storage.
func (b *Book) Text() string {
	return strings.Join(b.Lines, "\n")
}

// SplitLines turns a raw body back into the line table used by the tokenizer.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// ShelfEntry identifies one book in the fixed analysis corpus.
type ShelfEntry struct {
	GutenbergID int64
	Title       string
	Author      string
}

// DefaultShelf returns the fixed set of military-strategy books the report
// analyzes. IDs are Project Gutenberg ebook numbers.
func DefaultShelf() []ShelfEntry {
	return []ShelfEntry{
		{GutenbergID: 132, Title: "The Art of War", Author: "Sunzi"},
		{GutenbergID: 1946, Title: "On War", Author: "Clausewitz, Carl von"},
		{GutenbergID: 1232, Title: "The Prince", Author: "Machiavelli, Niccolò"},
		{GutenbergID: 15772, Title: "The Art of War", Author: "Machiavelli, Niccolò"},
		{GutenbergID: 13549, Title: "The Art of War", Author: "Jomini, Antoine Henri, baron de"},
		{GutenbergID: 13529, Title: "The Influence of Sea Power Upon History, 1660-1783", Author: "Mahan, A. T."},
	}
}
