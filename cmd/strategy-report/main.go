package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/FelipeVillota/nlp-strategy/internal/gutenberg"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/config"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/report"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/stopfilter"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/store/sqlite"
)

type summary struct {
	RunID        string `json:"run_id"`
	Books        int    `json:"books"`
	RawRows      int    `json:"raw_rows"`
	FilteredRows int    `json:"filtered_rows"`
	GraphNodes   int    `json:"graph_nodes"`
	GraphEdges   int    `json:"graph_edges"`
	ArtifactDir  string `json:"artifact_dir"`
}

func main() {
	var (
		input     = flag.String("input", "", "JSONL corpus file (mutually exclusive with --cache)")
		cache     = flag.String("cache", "", "SQLite corpus cache to read instead of JSONL")
		cfgPath   = flag.String("config", "", "Analysis config YAML (optional)")
		stopsPath = flag.String("stops", "", "Extra stopword list YAML (optional)")
		outDir    = flag.String("out", "report", "Artifact output directory")
	)
	flag.Parse()

	if err := checkSource(*input, *cache); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	cfg := config.DefaultAnalysis()
	if *cfgPath != "" {
		loaded, err := config.LoadAnalysis(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	books, err := loadCorpus(ctx, *input, *cache)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}
	if len(books) == 0 {
		log.Fatal("corpus is empty")
	}

	stops := stopfilter.Default()
	stops.AddAll(cfg.CustomStops)
	if *stopsPath != "" {
		sl, err := config.LoadStoplist(*stopsPath)
		if err != nil {
			log.Fatalf("load stoplist: %v", err)
		}
		stops.AddAll(sl.Terms)
	}

	analyzer := strategy.New(strategy.Options{
		Stops:           stops,
		BigramThreshold: cfg.BigramThreshold,
		TopTerms:        cfg.TopTerms,
	})

	results, err := analyzer.Run(books)
	if err != nil {
		log.Fatalf("analyze corpus: %v", err)
	}

	artifacts, err := report.New().Render(results, *outDir)
	if err != nil {
		log.Fatalf("render report: %v", err)
	}

	out, err := json.MarshalIndent(summary{
		RunID:        artifacts.RunID,
		Books:        len(books),
		RawRows:      len(results.Raw),
		FilteredRows: len(results.Filtered),
		GraphNodes:   results.Graph.NodeCount(),
		GraphEdges:   results.Graph.EdgeCount(),
		ArtifactDir:  artifacts.Dir,
	}, "", "  ")
	if err != nil {
		log.Fatalf("marshal summary: %v", err)
	}
	fmt.Println(string(out))
}

// checkSource enforces that exactly one corpus source is given.
func checkSource(input, cache string) error {
	if input == "" && cache == "" {
		return errors.New("--input or --cache required")
	}
	if input != "" && cache != "" {
		return errors.New("--input and --cache are mutually exclusive")
	}
	return nil
}

func loadCorpus(ctx context.Context, input, cache string) ([]corpus.Book, error) {
	if cache != "" {
		s, err := sqlite.OpenSQLite(ctx, cache)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		defer s.Close()
		return s.ListBooks(ctx)
	}
	return gutenberg.LoadFromJSONL(input)
}
