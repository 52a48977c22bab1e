// Package strategy wires the full report pipeline: corpus lines are
// tokenized, counted, stopword-filtered, re-counted for tf-idf, and the
// bigram adjacency graph is built. Every stage consumes the complete
// in-memory output of the previous one; nothing persists across runs.
package strategy

import (
	"sort"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/bigraph"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/ingest"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/stopfilter"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/tfidf"
)

// Options configures an Analyzer.
type Options struct {
	Stops           *stopfilter.Set
	BigramThreshold int64
	TopTerms        int
	CloudTerms      int
}

// Analyzer runs the pipeline over a loaded corpus.
type Analyzer struct {
	tokenizer *ingest.Tokenizer
	stops     *stopfilter.Set
	threshold int64
	topTerms  int
	cloud     int
}

// New creates an analyzer. Zero options fall back to defaults: the
// built-in stopword lists, bigram threshold 10, 15 top terms per book,
// and 100 word-cloud entries.
func New(opts Options) *Analyzer {
	a := &Analyzer{
		tokenizer: ingest.NewTokenizer(),
		stops:     opts.Stops,
		threshold: opts.BigramThreshold,
		topTerms:  opts.TopTerms,
		cloud:     opts.CloudTerms,
	}
	if a.stops == nil {
		a.stops = stopfilter.Default()
	}
	if a.threshold <= 0 {
		a.threshold = bigraph.DefaultThreshold
	}
	if a.topTerms <= 0 {
		a.topTerms = 15
	}
	if a.cloud <= 0 {
		a.cloud = 100
	}
	return a
}

// WordWeight is one word-cloud entry: corpus-wide count after filtering,
// ranked 1 = heaviest.
type WordWeight struct {
	Word  string `json:"word"`
	Count int64  `json:"count"`
	Rank  int    `json:"rank"`
}

// Results holds every derived table of one report run.
type Results struct {
	Raw       []tfidf.Record       // unigram statistics before stopword filtering
	Filtered  []tfidf.Record       // recomputed over the filtered vocabulary
	TopTFIDF  []tfidf.Record       // most salient terms per book
	Zipf      []tfidf.RankedRecord // rank-frequency points per book, filtered counts
	WordCloud []WordWeight
	Pairs     map[ingest.Pair]int64 // raw-adjacency counts, stopword pairs removed, pre-threshold
	Graph     *bigraph.Graph
}

// Run executes the pipeline over the given books. Empty books and an empty
// corpus degrade to empty tables.
func (a *Analyzer) Run(books []corpus.Book) (*Results, error) {
	rawCounter := tfidf.NewCounter()
	filteredCounter := tfidf.NewCounter()
	var pairs []ingest.Pair

	for _, b := range books {
		tokens := a.tokenizer.TokenizeLines(b.Lines)
		rawCounter.AddDocument(b.GutenbergID, b.Title, b.Author, tokens)

		// Filter raw counts first, then compute tf/idf: totals and
		// document frequencies must reflect the reduced vocabulary.
		kept := a.stops.Filter(tokens)
		filteredCounter.AddDocument(b.GutenbergID, b.Title, b.Author, kept)

		// Bigrams are true line adjacencies: pairs come from the raw
		// token stream, then any pair containing a stopword is dropped.
		// Filtering the stream first would splice non-adjacent words
		// into pairs that never occur in the text.
		for _, p := range a.tokenizer.BigramLines(b.Lines) {
			if a.stops.IsStop(p.First) || a.stops.IsStop(p.Second) {
				continue
			}
			pairs = append(pairs, p)
		}
	}

	filtered := filteredCounter.Compute()
	counts := bigraph.CountPairs(pairs)

	return &Results{
		Raw:       rawCounter.Compute(),
		Filtered:  filtered,
		TopTFIDF:  tfidf.TopPerDoc(filtered, a.topTerms),
		Zipf:      tfidf.RankWithinDoc(filtered),
		WordCloud: a.wordCloud(filtered),
		Pairs:     counts,
		Graph:     bigraph.Build(counts, a.threshold),
	}, nil
}

// wordCloud aggregates filtered counts corpus-wide and keeps the heaviest
// words, ranked deterministically: count descending, word ascending.
func (a *Analyzer) wordCloud(records []tfidf.Record) []WordWeight {
	totals := make(map[string]int64)
	for _, r := range records {
		totals[r.Word] += r.N
	}

	weights := make([]WordWeight, 0, len(totals))
	for w, n := range totals {
		weights = append(weights, WordWeight{Word: w, Count: n})
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Count != weights[j].Count {
			return weights[i].Count > weights[j].Count
		}
		return weights[i].Word < weights[j].Word
	})

	if len(weights) > a.cloud {
		weights = weights[:a.cloud]
	}
	for i := range weights {
		weights[i].Rank = i + 1
	}
	return weights
}
