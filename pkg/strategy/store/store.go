// Package store defines the local corpus cache. Downloaded books are kept
// so repeated report runs do not re-fetch them; every analysis table is
// still recomputed fresh from the cached raw text on each run.
package store

import (
	"context"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
)

// Store persists raw downloaded books keyed by Gutenberg ID.
type Store interface {
	Close() error

	UpsertBook(ctx context.Context, b corpus.Book) error
	GetBook(ctx context.Context, gutenbergID int64) (corpus.Book, bool, error)
	ListBooks(ctx context.Context) ([]corpus.Book, error)
}
