package report

import (
	"fmt"
	"strings"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/bigraph"
)

// RenderDOT serializes the bigram graph as a Graphviz digraph. Edge
// thickness scales with co-occurrence count so force-directed layouts show
// the strong adjacencies. Output order is deterministic.
func RenderDOT(g *bigraph.Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph bigrams {\n")
	sb.WriteString("\tlayout=fdp;\n")
	sb.WriteString("\tnode [shape=plaintext, fontname=\"Helvetica\"];\n")
	sb.WriteString("\tedge [color=gray50];\n\n")

	if g != nil {
		edges := g.Edges()

		maxWeight := int64(1)
		for _, e := range edges {
			if e.Weight > maxWeight {
				maxWeight = e.Weight
			}
		}

		for _, word := range g.Nodes() {
			fmt.Fprintf(&sb, "\t%s;\n", quoteID(word))
		}
		if len(edges) > 0 {
			sb.WriteString("\n")
		}
		for _, e := range edges {
			width := 0.5 + 2.5*float64(e.Weight)/float64(maxWeight)
			fmt.Fprintf(&sb, "\t%s -> %s [label=\"%d\", penwidth=%.2f];\n",
				quoteID(e.First), quoteID(e.Second), e.Weight, width)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func quoteID(word string) string {
	return `"` + strings.ReplaceAll(word, `"`, `\"`) + `"`
}
