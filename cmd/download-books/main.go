package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/FelipeVillota/nlp-strategy/internal/gutenberg"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/config"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/store"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/store/sqlite"
)

func main() {
	var (
		out      = flag.String("out", "testdata/books/docs.jsonl", "Output JSONL corpus file")
		cache    = flag.String("cache", "testdata/books/cache.db", "SQLite corpus cache (empty to disable)")
		cfgPath  = flag.String("config", "", "Optional analysis config selecting the book set")
		baseURL  = flag.String("base-url", gutenberg.DefaultBaseURL, "Gutendex catalog base URL")
		throttle = flag.Duration("throttle", 200*time.Millisecond, "Delay between catalog requests")
	)
	flag.Parse()

	ctx := context.Background()

	shelf := corpus.DefaultShelf()
	if *cfgPath != "" {
		cfg, err := config.LoadAnalysis(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		if len(cfg.Books) > 0 {
			shelf = shelf[:0]
			for _, b := range cfg.Books {
				shelf = append(shelf, corpus.ShelfEntry{GutenbergID: b.ID, Title: b.Title, Author: b.Author})
			}
		}
	}

	var cacheStore store.Store
	if *cache != "" {
		if err := os.MkdirAll(filepath.Dir(*cache), 0755); err != nil {
			log.Fatalf("create cache directory: %v", err)
		}
		s, err := sqlite.OpenSQLite(ctx, *cache)
		if err != nil {
			log.Fatalf("open cache: %v", err)
		}
		cacheStore = s
		defer cacheStore.Close()
	}

	client := gutenberg.NewClient()
	client.BaseURL = *baseURL

	log.Printf("Downloading %d strategy books...", len(shelf))

	books := make([]corpus.Book, 0, len(shelf))
	for i, entry := range shelf {
		book, ok := fromCache(ctx, cacheStore, entry.GutenbergID)
		if !ok {
			var err error
			book, err = client.FetchBook(ctx, entry.GutenbergID)
			if err != nil {
				// A retrieval failure aborts the run: no retries,
				// no partial corpus.
				log.Fatalf("fetch book %d (%s): %v", entry.GutenbergID, entry.Title, err)
			}
			if cacheStore != nil {
				if err := cacheStore.UpsertBook(ctx, book); err != nil {
					log.Fatalf("cache book %d: %v", entry.GutenbergID, err)
				}
			}
			if i < len(shelf)-1 {
				time.Sleep(*throttle) // be nice to the catalog
			}
		}

		if err := book.Validate(); err != nil {
			log.Fatalf("book %d invalid: %v", entry.GutenbergID, err)
		}
		books = append(books, book)
		log.Printf("Got %q (%d lines)", book.Title, len(book.Lines))
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}
	if err := gutenberg.SaveToJSONL(*out, books); err != nil {
		log.Fatalf("write corpus: %v", err)
	}

	log.Printf("✓ Wrote %d books to %s", len(books), *out)
}

func fromCache(ctx context.Context, s store.Store, id int64) (corpus.Book, bool) {
	if s == nil {
		return corpus.Book{}, false
	}
	book, ok, err := s.GetBook(ctx, id)
	if err != nil {
		log.Printf("Warning: cache lookup for %d failed: %v", id, err)
		return corpus.Book{}, false
	}
	return book, ok
}
