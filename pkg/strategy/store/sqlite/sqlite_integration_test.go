package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/internalerr"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}

	book := corpus.Book{
		GutenbergID: 132,
		Title:       "The Art of War",
		Author:      "Sunzi",
		Lines:       []string{"All warfare is based on deception.", "Attack him where he is unprepared."},
	}
	if err := s.UpsertBook(ctx, book); err != nil {
		t.Fatalf("UpsertBook: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// reopen to prove the cache survives the process
	s, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, ok, err := s.GetBook(ctx, 132)
	if err != nil || !ok {
		t.Fatalf("GetBook: ok=%v err=%v", ok, err)
	}
	if got.Title != book.Title || got.Author != book.Author {
		t.Errorf("round trip lost metadata: %+v", got)
	}
	if len(got.Lines) != 2 || got.Lines[1] != book.Lines[1] {
		t.Errorf("round trip lost lines: %v", got.Lines)
	}
}

func TestSQLiteOpenUnavailablePath(t *testing.T) {
	ctx := context.Background()

	// the parent directory does not exist, so the database cannot be created
	_, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "missing", "cache.db"))
	if !errors.Is(err, internalerr.ErrStoreUnavailable) {
		t.Errorf("OpenSQLite = %v, want ErrStoreUnavailable", err)
	}
}

func TestSQLiteUpsertRejectsInvalidID(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	err = s.UpsertBook(ctx, corpus.Book{GutenbergID: 0, Title: "T", Lines: []string{"x"}})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("UpsertBook = %v, want ErrInvalidInput", err)
	}
}

func TestSQLiteMissingBook(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	_, ok, err := s.GetBook(ctx, 999)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if ok {
		t.Error("missing book reported as found")
	}
}

func TestSQLiteUpsertReplacesAndLists(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if err := s.UpsertBook(ctx, corpus.Book{GutenbergID: 1946, Title: "Draft", Lines: []string{"x"}}); err != nil {
		t.Fatalf("UpsertBook: %v", err)
	}
	if err := s.UpsertBook(ctx, corpus.Book{GutenbergID: 1946, Title: "On War", Author: "Clausewitz, Carl von", Lines: []string{"x", "y"}}); err != nil {
		t.Fatalf("UpsertBook: %v", err)
	}
	if err := s.UpsertBook(ctx, corpus.Book{GutenbergID: 132, Title: "The Art of War", Lines: []string{"z"}}); err != nil {
		t.Fatalf("UpsertBook: %v", err)
	}

	books, err := s.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("ListBooks = %d books, want 2", len(books))
	}
	if books[0].GutenbergID != 132 || books[1].GutenbergID != 1946 {
		t.Errorf("books out of order: %d, %d", books[0].GutenbergID, books[1].GutenbergID)
	}
	if books[1].Title != "On War" || len(books[1].Lines) != 2 {
		t.Errorf("upsert did not replace: %+v", books[1])
	}
}
