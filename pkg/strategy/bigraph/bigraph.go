// Package bigraph aggregates adjacent word pairs and builds the directed
// co-occurrence graph used by the network visualization.
package bigraph

import (
	"sort"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/ingest"
)

// DefaultThreshold is the minimum co-occurrence count a pair must exceed
// to be retained as a graph edge.
const DefaultThreshold int64 = 10

// CountPairs aggregates bigram occurrences by (first, second). Order is
// significant: (war, art) and (art, war) are distinct pairs. Self-pairs
// count like any other pair.
func CountPairs(pairs []ingest.Pair) map[ingest.Pair]int64 {
	counts := make(map[ingest.Pair]int64)
	for _, p := range pairs {
		if p.First == "" || p.Second == "" {
			continue
		}
		counts[p]++
	}
	return counts
}

// Edge is one retained adjacency with its co-occurrence count.
type Edge struct {
	First  string
	Second string
	Weight int64
}

// Build drops pairs with count <= threshold and constructs the directed
// graph: nodes are distinct words, each retained pair is an edge
// first -> second weighted by its count. Self-loops pass through as-is.
func Build(counts map[ingest.Pair]int64, threshold int64) *Graph {
	g := NewGraph()
	for p, n := range counts {
		if n <= threshold {
			continue
		}
		g.AddEdge(p.First, p.Second, n)
	}
	return g
}

// Graph is a directed word-adjacency graph with weighted edges.
type Graph struct {
	nodes    map[string]struct{}
	outbound map[string]map[string]int64
	inbound  map[string]map[string]int64
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]struct{}),
		outbound: make(map[string]map[string]int64),
		inbound:  make(map[string]map[string]int64),
	}
}

// EnsureNode adds a word node if it does not exist.
func (g *Graph) EnsureNode(word string) {
	g.nodes[word] = struct{}{}
}

// AddEdge creates the directed edge first -> second, adding both nodes.
// Re-adding an edge replaces its weight.
func (g *Graph) AddEdge(first, second string, weight int64) {
	g.EnsureNode(first)
	g.EnsureNode(second)

	if g.outbound[first] == nil {
		g.outbound[first] = make(map[string]int64)
	}
	g.outbound[first][second] = weight

	if g.inbound[second] == nil {
		g.inbound[second] = make(map[string]int64)
	}
	g.inbound[second][first] = weight
}

// HasNode reports whether the word is in the graph.
func (g *Graph) HasNode(word string) bool {
	_, ok := g.nodes[word]
	return ok
}

// Weight returns the edge weight for first -> second, zero if absent.
func (g *Graph) Weight(first, second string) int64 {
	return g.outbound[first][second]
}

// NodeCount returns the number of distinct words.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, targets := range g.outbound {
		count += len(targets)
	}
	return count
}

// Nodes returns all words in ascending order.
func (g *Graph) Nodes() []string {
	words := make([]string, 0, len(g.nodes))
	for w := range g.nodes {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Edges returns all edges ordered by weight descending, then source, then
// target, so rendered output is reproducible.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for first, targets := range g.outbound {
		for second, weight := range targets {
			edges = append(edges, Edge{First: first, Second: second, Weight: weight})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight > edges[j].Weight
		}
		if edges[i].First != edges[j].First {
			return edges[i].First < edges[j].First
		}
		return edges[i].Second < edges[j].Second
	})
	return edges
}

// Neighbors returns all words connected to the given word in either
// direction, ascending, each listed once.
func (g *Graph) Neighbors(word string) []string {
	seen := make(map[string]struct{})
	for target := range g.outbound[word] {
		seen[target] = struct{}{}
	}
	for source := range g.inbound[word] {
		seen[source] = struct{}{}
	}

	result := make([]string, 0, len(seen))
	for w := range seen {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// DegreeCentrality computes (in+out)/(2*(n-1)) per node, the annotation the
// report attaches to hub words. Single-node graphs score zero.
func (g *Graph) DegreeCentrality() map[string]float64 {
	n := len(g.nodes)
	result := make(map[string]float64, n)
	if n <= 1 {
		for w := range g.nodes {
			result[w] = 0.0
		}
		return result
	}

	normalizer := 2.0 * float64(n-1)
	for w := range g.nodes {
		degree := len(g.outbound[w]) + len(g.inbound[w])
		result[w] = float64(degree) / normalizer
	}
	return result
}
