package ingest

import (
	"strings"
	"unicode"
)

// Tokenizer splits raw text lines into normalized word tokens.
// Stopword removal is intentionally not performed here: the stopfilter
// stage runs on raw token streams so that totals and idf are recomputed
// over the filtered vocabulary afterwards.
type Tokenizer struct{}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits a line into lowercased word tokens. Word characters are
// letters, digits, and interior apostrophes or hyphens. Punctuation-only
// runs produce no token. Empty input produces no tokens.
func (t *Tokenizer) Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := cleanToken(current.String())
		if word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range line {
		// Curly apostrophe -> straight, so contractions normalize
		if r == '’' {
			r = '\''
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// TokenizeLines tokenizes each line in order and returns one flat stream.
func (t *Tokenizer) TokenizeLines(lines []string) []string {
	var tokens []string
	for _, line := range lines {
		tokens = append(tokens, t.Tokenize(line)...)
	}
	return tokens
}

// cleanToken strips leading/trailing hyphens and apostrophes and collapses
// consecutive hyphens left over from dashes in the source scans.
func cleanToken(token string) string {
	token = strings.Trim(token, "-'")

	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}

	return token
}

// Pair is an ordered pair of adjacent words.
type Pair struct {
	First, Second string
}

// Bigrams returns the overlapping adjacent pairs of a single line's token
// stream. Pairs never cross line or document boundaries; the caller feeds
// one line at a time. Fewer than two tokens produce no pairs. Duplicate and
// self-pairs are emitted once per occurrence, not deduplicated.
func Bigrams(tokens []string) []Pair {
	if len(tokens) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		pairs = append(pairs, Pair{First: tokens[i], Second: tokens[i+1]})
	}
	return pairs
}

// BigramLines tokenizes each line and collects its adjacent pairs.
func (t *Tokenizer) BigramLines(lines []string) []Pair {
	var pairs []Pair
	for _, line := range lines {
		pairs = append(pairs, Bigrams(t.Tokenize(line))...)
	}
	return pairs
}
