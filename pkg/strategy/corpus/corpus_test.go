package corpus

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		book    Book
		wantErr bool
	}{
		{
			name: "complete book",
			book: Book{GutenbergID: 132, Title: "The Art of War", Author: "Sunzi", Lines: []string{"x"}},
		},
		{
			name: "missing author is allowed",
			book: Book{GutenbergID: 777, Title: "Anonymous Treatise", Lines: []string{"x"}},
		},
		{
			name:    "missing id",
			book:    Book{Title: "The Art of War", Lines: []string{"x"}},
			wantErr: true,
		},
		{
			name:    "missing title",
			book:    Book{GutenbergID: 132, Title: "  ", Lines: []string{"x"}},
			wantErr: true,
		},
		{
			name:    "no lines",
			book:    Book{GutenbergID: 132, Title: "The Art of War"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.book.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTextAndSplitLines(t *testing.T) {
	book := Book{Lines: []string{"one", "two"}}
	if book.Text() != "one\ntwo" {
		t.Errorf("Text = %q", book.Text())
	}

	if got := SplitLines(""); got != nil {
		t.Errorf("SplitLines(empty) = %v, want nil", got)
	}

	got := SplitLines("one\r\ntwo\nthree")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
}

func TestDefaultShelf(t *testing.T) {
	shelf := DefaultShelf()

	if len(shelf) == 0 {
		t.Fatal("empty shelf")
	}

	seen := make(map[int64]bool)
	for _, entry := range shelf {
		if entry.GutenbergID <= 0 || entry.Title == "" {
			t.Errorf("incomplete shelf entry: %+v", entry)
		}
		if seen[entry.GutenbergID] {
			t.Errorf("duplicate id %d", entry.GutenbergID)
		}
		seen[entry.GutenbergID] = true
	}
}
