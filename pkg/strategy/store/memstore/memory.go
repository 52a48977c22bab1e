package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/internalerr"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu    sync.RWMutex
	books map[int64]corpus.Book
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		books: make(map[int64]corpus.Book),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertBook inserts or replaces a book, keyed by Gutenberg ID.
func (s *Store) UpsertBook(ctx context.Context, b corpus.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.GutenbergID <= 0 {
		return fmt.Errorf("book id %d: %w", b.GutenbergID, internalerr.ErrInvalidInput)
	}
	s.books[b.GutenbergID] = copyBook(b)
	return nil
}

// GetBook returns a book by Gutenberg ID.
func (s *Store) GetBook(ctx context.Context, gutenbergID int64) (corpus.Book, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.books[gutenbergID]; ok {
		return copyBook(b), true, nil
	}
	return corpus.Book{}, false, nil
}

// ListBooks returns all cached books ordered by Gutenberg ID.
func (s *Store) ListBooks(ctx context.Context) ([]corpus.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.books))
	for id := range s.books {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	books := make([]corpus.Book, 0, len(ids))
	for _, id := range ids {
		books = append(books, copyBook(s.books[id]))
	}
	return books, nil
}

func copyBook(b corpus.Book) corpus.Book {
	out := b
	out.Lines = append([]string(nil), b.Lines...)
	return out
}
