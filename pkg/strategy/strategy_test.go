package strategy

import (
	"strings"
	"testing"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/ingest"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/stopfilter"
)

func testBooks() []corpus.Book {
	return []corpus.Book{
		{
			GutenbergID: 1,
			Title:       "The Art of War",
			Author:      "Sunzi",
			Lines: []string{
				"All warfare is based on deception.",
				"Supreme excellence consists in breaking the enemy's resistance without fighting.",
				"The supreme art of war is to subdue the enemy without fighting.",
			},
		},
		{
			GutenbergID: 2,
			Title:       "On War",
			Author:      "Clausewitz",
			Lines: []string{
				"War is the continuation of policy by other means.",
				"War is an act of violence to compel the enemy to do our will.",
			},
		},
	}
}

func TestRunPipeline(t *testing.T) {
	analyzer := New(Options{BigramThreshold: 1})

	results, err := analyzer.Run(testBooks())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results.Raw) == 0 || len(results.Filtered) == 0 {
		t.Fatal("pipeline produced empty tables for a non-empty corpus")
	}

	// filtering before re-aggregation: totals shrink when stopwords exist
	rawTotals := make(map[int64]int64)
	for _, r := range results.Raw {
		rawTotals[r.DocID] = r.Total
	}
	for _, r := range results.Filtered {
		if r.Total > rawTotals[r.DocID] {
			t.Errorf("filtered total %d exceeds raw total %d for doc %d", r.Total, rawTotals[r.DocID], r.DocID)
		}
	}

	// no stopword survives filtering
	stops := stopfilter.Default()
	for _, r := range results.Filtered {
		if stops.IsStop(r.Word) {
			t.Errorf("stopword %q survived filtering", r.Word)
		}
	}

	// idf recomputed over the filtered vocabulary: "war" and "enemy" are
	// in both books, so they carry zero salience
	for _, r := range results.Filtered {
		if (r.Word == "war" || r.Word == "enemy") && r.TFIDF != 0 {
			t.Errorf("ubiquitous %q has tfidf %v, want 0", r.Word, r.TFIDF)
		}
	}
}

func TestRunEmptyCorpus(t *testing.T) {
	analyzer := New(Options{})

	results, err := analyzer.Run(nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results.Raw) != 0 || len(results.Filtered) != 0 {
		t.Error("empty corpus should produce empty tables")
	}
	if results.Graph.NodeCount() != 0 {
		t.Error("empty corpus should produce an empty graph")
	}
}

func TestRunEmptyBook(t *testing.T) {
	analyzer := New(Options{})

	books := append(testBooks(), corpus.Book{GutenbergID: 3, Title: "Blank"})
	results, err := analyzer.Run(books)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, r := range results.Filtered {
		if r.DocID == 3 {
			t.Errorf("empty book produced a frequency row: %+v", r)
		}
	}
}

func TestWordCloudRanks(t *testing.T) {
	analyzer := New(Options{CloudTerms: 5})

	results, err := analyzer.Run(testBooks())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results.WordCloud) == 0 {
		t.Fatal("empty word cloud")
	}
	if len(results.WordCloud) > 5 {
		t.Errorf("cloud size = %d, want <= 5", len(results.WordCloud))
	}
	for i, w := range results.WordCloud {
		if w.Rank != i+1 {
			t.Errorf("rank at %d = %d, want %d", i, w.Rank, i+1)
		}
		if i > 0 && w.Count > results.WordCloud[i-1].Count {
			t.Error("cloud not sorted by count descending")
		}
	}
}

func TestBigramsAreTrueAdjacencies(t *testing.T) {
	// Pairs come from the raw stream; a pair containing a stopword is
	// dropped, never bridged. "art" and "war" are separated by "of" in
	// the text, so no pair at all survives this line.
	analyzer := New(Options{BigramThreshold: 1})

	results, err := analyzer.Run([]corpus.Book{
		{GutenbergID: 1, Title: "Maxim", Lines: []string{"the art of war"}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results.Pairs) != 0 {
		t.Errorf("pairs = %v, want none: every raw adjacency contains a stopword", results.Pairs)
	}
	if n := results.Pairs[ingest.Pair{First: "art", Second: "war"}]; n != 0 {
		t.Errorf("art->war counted %d times but the words are never adjacent", n)
	}
}

func TestBigramGraphFromPipeline(t *testing.T) {
	// Repeat one line enough times to push a pair over the threshold.
	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines, "sea power decides supremacy")
	}

	analyzer := New(Options{BigramThreshold: 10})
	results, err := analyzer.Run([]corpus.Book{{GutenbergID: 1, Title: "Sea Power", Lines: lines}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if results.Graph.Weight("sea", "power") != 12 {
		t.Errorf("sea->power weight = %d, want 12", results.Graph.Weight("sea", "power"))
	}
	if !strings.Contains(strings.Join(results.Graph.Nodes(), " "), "supremacy") {
		t.Error("expected supremacy node in graph")
	}
}
