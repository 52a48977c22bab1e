package report

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"sort"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy"
)

// View model for the HTML template. Geometry is precomputed here so the
// template stays declarative.

type htmlReport struct {
	RunID     string
	Books     []bookSection
	Cloud     []cloudWord
	Zipf      []scatterPoint
	EdgeCount int
	NodeCount int
	TopEdges  []edgeRow
	Hubs      []hubRow
}

type bookSection struct {
	Title  string
	Author string
	Height int // svg height, 22 px per bar
	Bars   []bar
}

type bar struct {
	Word  string
	TFIDF string
	Width float64 // 0..520 px
	Y     int
}

type cloudWord struct {
	Word string
	Size int // font px, scaled by corpus count
}

type scatterPoint struct {
	X     float64 // log10(rank), scaled to plot
	Y     float64 // log10(tf), scaled to plot
	Title string
}

type edgeRow struct {
	First  string
	Second string
	Weight int64
}

type hubRow struct {
	Word       string
	Centrality string
}

func renderHTML(runID string, results *strategy.Results) ([]byte, error) {
	view := buildView(runID, results)

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	return buf.Bytes(), nil
}

func buildView(runID string, results *strategy.Results) htmlReport {
	view := htmlReport{RunID: runID}

	// Top tf-idf bars per book
	type bookKey struct {
		id            int64
		title, author string
	}
	var order []bookKey
	grouped := make(map[bookKey][]bar)
	maxTFIDF := 0.0
	for _, r := range results.TopTFIDF {
		if r.TFIDF > maxTFIDF {
			maxTFIDF = r.TFIDF
		}
	}
	if maxTFIDF == 0 {
		maxTFIDF = 1
	}
	for _, r := range results.TopTFIDF {
		k := bookKey{id: r.DocID, title: r.Title, author: r.Author}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], bar{
			Word:  r.Word,
			TFIDF: fmt.Sprintf("%.5f", r.TFIDF),
			Width: 520.0 * r.TFIDF / maxTFIDF,
		})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].id < order[j].id })
	for _, k := range order {
		bars := grouped[k]
		for i := range bars {
			bars[i].Y = i * 22
		}
		view.Books = append(view.Books, bookSection{
			Title:  k.title,
			Author: k.author,
			Height: len(bars) * 22,
			Bars:   bars,
		})
	}

	// Word cloud sizes: 12..48 px scaled by count relative to the heaviest
	if len(results.WordCloud) > 0 {
		maxCount := results.WordCloud[0].Count
		if maxCount == 0 {
			maxCount = 1
		}
		for _, w := range results.WordCloud {
			size := 12 + int(36.0*float64(w.Count)/float64(maxCount))
			view.Cloud = append(view.Cloud, cloudWord{Word: w.Word, Size: size})
		}
	}

	// Rank-frequency scatter on log-log axes, mapped into a 560x320 plot
	maxLogRank := 0.0
	minLogTF := 0.0
	for _, r := range results.Zipf {
		if lr := math.Log10(float64(r.Rank)); lr > maxLogRank {
			maxLogRank = lr
		}
		if r.TF > 0 {
			if lt := math.Log10(r.TF); lt < minLogTF {
				minLogTF = lt
			}
		}
	}
	if maxLogRank == 0 {
		maxLogRank = 1
	}
	if minLogTF == 0 {
		minLogTF = -1
	}
	for _, r := range results.Zipf {
		if r.TF <= 0 {
			continue
		}
		x := 20 + 540.0*math.Log10(float64(r.Rank))/maxLogRank
		y := 20 + 280.0*math.Log10(r.TF)/minLogTF
		view.Zipf = append(view.Zipf, scatterPoint{X: x, Y: y, Title: r.Title})
	}

	// Graph summary and strongest adjacencies
	if results.Graph != nil {
		view.NodeCount = results.Graph.NodeCount()
		view.EdgeCount = results.Graph.EdgeCount()
		edges := results.Graph.Edges()
		if len(edges) > 20 {
			edges = edges[:20]
		}
		for _, e := range edges {
			view.TopEdges = append(view.TopEdges, edgeRow{First: e.First, Second: e.Second, Weight: e.Weight})
		}

		centrality := results.Graph.DegreeCentrality()
		hubs := make([]string, 0, len(centrality))
		for w := range centrality {
			hubs = append(hubs, w)
		}
		sort.Slice(hubs, func(i, j int) bool {
			if centrality[hubs[i]] != centrality[hubs[j]] {
				return centrality[hubs[i]] > centrality[hubs[j]]
			}
			return hubs[i] < hubs[j]
		})
		if len(hubs) > 10 {
			hubs = hubs[:10]
		}
		for _, w := range hubs {
			view.Hubs = append(view.Hubs, hubRow{Word: w, Centrality: fmt.Sprintf("%.3f", centrality[w])})
		}
	}

	return view
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Strategy corpus report {{.RunID}}</title>
<style>
body { font-family: Georgia, serif; max-width: 760px; margin: 2em auto; color: #222; }
h1, h2 { font-weight: normal; }
svg { background: #fafafa; border: 1px solid #ddd; }
.cloud span { margin: 0 0.3em; color: #345; }
table { border-collapse: collapse; }
td, th { padding: 2px 10px; border-bottom: 1px solid #eee; text-align: left; }
</style>
</head>
<body>
<h1>Term statistics of the strategy corpus</h1>
<p>Run {{.RunID}}.</p>

{{range .Books}}
<h2>{{.Title}}{{if .Author}} — {{.Author}}{{end}}</h2>
<svg width="680" height="{{.Height}}">
{{range .Bars}}
  <rect x="150" y="{{.Y}}" width="{{printf "%.1f" .Width}}" height="16" fill="#4a6b8a"></rect>
  <text x="145" y="{{.Y}}" dy="12" text-anchor="end" font-size="12">{{.Word}}</text>
  <text x="155" y="{{.Y}}" dy="12" font-size="10" fill="#fff">{{.TFIDF}}</text>
{{end}}
</svg>
{{end}}

<h2>Word cloud weights</h2>
<p class="cloud">{{range .Cloud}}<span style="font-size: {{.Size}}px">{{.Word}}</span> {{end}}</p>

<h2>Rank-frequency (log-log)</h2>
<svg width="600" height="340">
{{range .Zipf}}  <circle cx="{{printf "%.1f" .X}}" cy="{{printf "%.1f" .Y}}" r="2" fill="#4a6b8a" opacity="0.5"><title>{{.Title}}</title></circle>
{{end}}</svg>

<h2>Bigram network</h2>
<p>{{.NodeCount}} words, {{.EdgeCount}} adjacencies above threshold. Full graph in bigrams.dot.</p>
<table>
<tr><th>word 1</th><th>word 2</th><th>count</th></tr>
{{range .TopEdges}}<tr><td>{{.First}}</td><td>{{.Second}}</td><td>{{.Weight}}</td></tr>
{{end}}</table>

<h2>Hub words</h2>
<table>
<tr><th>word</th><th>degree centrality</th></tr>
{{range .Hubs}}<tr><td>{{.Word}}</td><td>{{.Centrality}}</td></tr>
{{end}}</table>
</body>
</html>
`))
