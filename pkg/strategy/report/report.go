// Package report renders the analysis results into static artifacts: JSON
// tables, a Graphviz bigram network, and a self-contained HTML report with
// inline SVG charts. It is a pure sink: nothing flows back into the
// pipeline.
package report

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy"
)

// Renderer writes one run's artifacts, keyed by a ULID run identifier.
type Renderer struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a renderer.
func New() *Renderer {
	return &Renderer{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Artifacts lists where a rendered run's files landed.
type Artifacts struct {
	RunID       string
	Dir         string
	Frequencies string
	TopTFIDF    string
	WordCloud   string
	Zipf        string
	BigramDOT   string
	HTML        string
}

// Render writes all artifacts under outDir/<run-id>/ and returns their
// paths.
func (r *Renderer) Render(results *strategy.Results, outDir string) (*Artifacts, error) {
	runID := ulid.MustNew(ulid.Now(), r.entropy).String()
	dir := filepath.Join(outDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}

	a := &Artifacts{
		RunID:       runID,
		Dir:         dir,
		Frequencies: filepath.Join(dir, "frequencies.json"),
		TopTFIDF:    filepath.Join(dir, "top_tfidf.json"),
		WordCloud:   filepath.Join(dir, "wordcloud.json"),
		Zipf:        filepath.Join(dir, "zipf.json"),
		BigramDOT:   filepath.Join(dir, "bigrams.dot"),
		HTML:        filepath.Join(dir, "report.html"),
	}

	if err := writeJSON(a.Frequencies, results.Filtered); err != nil {
		return nil, err
	}
	if err := writeJSON(a.TopTFIDF, results.TopTFIDF); err != nil {
		return nil, err
	}
	if err := writeJSON(a.WordCloud, results.WordCloud); err != nil {
		return nil, err
	}
	if err := writeJSON(a.Zipf, zipfSeries(results)); err != nil {
		return nil, err
	}
	if err := os.WriteFile(a.BigramDOT, []byte(RenderDOT(results.Graph)), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", a.BigramDOT, err)
	}
	htmlDoc, err := renderHTML(runID, results)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(a.HTML, htmlDoc, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", a.HTML, err)
	}

	return a, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// zipfPoint is one rank-frequency observation, the source data for the
// log-log plot.
type zipfPoint struct {
	DocID int64   `json:"doc_id"`
	Title string  `json:"title"`
	Word  string  `json:"word"`
	Rank  int64   `json:"rank"`
	TF    float64 `json:"term_frequency"`
}

func zipfSeries(results *strategy.Results) []zipfPoint {
	points := make([]zipfPoint, 0, len(results.Zipf))
	for _, r := range results.Zipf {
		points = append(points, zipfPoint{
			DocID: r.DocID,
			Title: r.Title,
			Word:  r.Word,
			Rank:  r.Rank,
			TF:    r.TF,
		})
	}
	return points
}
