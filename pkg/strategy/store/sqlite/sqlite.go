package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/internalerr"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite corpus cache with WAL mode enabled and the
// schema initialized.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS books (
	gutenberg_id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	author TEXT,
	body TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertBook inserts or replaces a downloaded book.
func (s *sqliteStore) UpsertBook(ctx context.Context, b corpus.Book) error {
	if b.GutenbergID <= 0 {
		return fmt.Errorf("book id %d: %w", b.GutenbergID, internalerr.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO books (gutenberg_id, title, author, body)
VALUES (?, ?, ?, ?)
ON CONFLICT(gutenberg_id) DO UPDATE SET
	title = excluded.title,
	author = excluded.author,
	body = excluded.body
`, b.GutenbergID, b.Title, b.Author, b.Text())
	return err
}

// GetBook returns a cached book by Gutenberg ID.
func (s *sqliteStore) GetBook(ctx context.Context, gutenbergID int64) (corpus.Book, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT gutenberg_id, title, author, body FROM books WHERE gutenberg_id = ?
`, gutenbergID)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return corpus.Book{}, false, nil
	}
	if err != nil {
		return corpus.Book{}, false, err
	}
	return b, true, nil
}

// ListBooks returns all cached books ordered by Gutenberg ID.
func (s *sqliteStore) ListBooks(ctx context.Context) ([]corpus.Book, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT gutenberg_id, title, author, body FROM books ORDER BY gutenberg_id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []corpus.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(r rowScanner) (corpus.Book, error) {
	var b corpus.Book
	var author sql.NullString
	var body string

	if err := r.Scan(&b.GutenbergID, &b.Title, &author, &body); err != nil {
		return corpus.Book{}, err
	}

	if author.Valid {
		b.Author = author.String
	}
	b.Lines = corpus.SplitLines(body)
	return b, nil
}
