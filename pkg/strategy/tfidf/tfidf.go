// Package tfidf computes per-document term statistics: raw counts, term
// frequency, inverse document frequency, and their product.
package tfidf

import (
	"math"
	"sort"
)

// Counter accumulates token counts per document.
type Counter struct {
	order   []int64 // document ids in insertion order
	docs    map[int64]*docCounts
	docFreq map[string]int64 // number of documents containing each word
}

type docCounts struct {
	title  string
	author string
	counts map[string]int64
	total  int64
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{
		docs:    make(map[int64]*docCounts),
		docFreq: make(map[string]int64),
	}
}

// AddDocument consumes one document's token stream. Multiplicity matters:
// one token per occurrence. Calling AddDocument twice with the same id
// accumulates into the same document.
func (c *Counter) AddDocument(docID int64, title, author string, tokens []string) {
	d, ok := c.docs[docID]
	if !ok {
		d = &docCounts{
			title:  title,
			author: author,
			counts: make(map[string]int64),
		}
		c.docs[docID] = d
		c.order = append(c.order, docID)
	}

	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if d.counts[tok] == 0 {
			c.docFreq[tok]++
		}
		d.counts[tok]++
		d.total++
	}
}

// TotalDocs returns the number of documents seen.
func (c *Counter) TotalDocs() int64 {
	return int64(len(c.docs))
}

// Total returns the token total for one document, zero if unknown.
func (c *Counter) Total(docID int64) int64 {
	if d, ok := c.docs[docID]; ok {
		return d.total
	}
	return 0
}

// DocFreq returns the number of documents containing the word.
func (c *Counter) DocFreq(word string) int64 {
	return c.docFreq[word]
}

// Record is one (document, word) frequency row.
type Record struct {
	DocID  int64
	Title  string
	Author string
	Word   string
	N      int64   // occurrences of Word in the document
	Total  int64   // all token occurrences in the document
	TF     float64 // N / Total
	DF     int64   // documents containing Word
	IDF    float64 // ln(totalDocs / DF); zero when the word is ubiquitous
	TFIDF  float64 // TF * IDF
}

// Compute produces the full frequency table in deterministic order:
// documents in insertion order, words ascending within each document.
// Documents with a zero token total contribute no rows.
func (c *Counter) Compute() []Record {
	totalDocs := float64(len(c.docs))
	var records []Record

	for _, docID := range c.order {
		d := c.docs[docID]
		if d.total == 0 {
			continue
		}

		words := make([]string, 0, len(d.counts))
		for w := range d.counts {
			words = append(words, w)
		}
		sort.Strings(words)

		for _, w := range words {
			n := d.counts[w]
			df := c.docFreq[w]
			tf := float64(n) / float64(d.total)
			idf := math.Log(totalDocs / float64(df))
			if idf < 0 {
				// guards float noise when df == totalDocs
				idf = 0
			}
			records = append(records, Record{
				DocID:  docID,
				Title:  d.title,
				Author: d.author,
				Word:   w,
				N:      n,
				Total:  d.total,
				TF:     tf,
				DF:     df,
				IDF:    idf,
				TFIDF:  tf * idf,
			})
		}
	}

	return records
}

// SortBySalience orders records by tf-idf descending; ties break by DocID
// then Word so output is reproducible.
func SortBySalience(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].TFIDF != records[j].TFIDF {
			return records[i].TFIDF > records[j].TFIDF
		}
		if records[i].DocID != records[j].DocID {
			return records[i].DocID < records[j].DocID
		}
		return records[i].Word < records[j].Word
	})
}

// SortByCount orders records by raw count descending with the same
// deterministic tie-break as SortBySalience.
func SortByCount(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].N != records[j].N {
			return records[i].N > records[j].N
		}
		if records[i].DocID != records[j].DocID {
			return records[i].DocID < records[j].DocID
		}
		return records[i].Word < records[j].Word
	})
}

// SortRarest orders records ascending by tf-idf for "rarest term" queries,
// same tie-break.
func SortRarest(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].TFIDF != records[j].TFIDF {
			return records[i].TFIDF < records[j].TFIDF
		}
		if records[i].DocID != records[j].DocID {
			return records[i].DocID < records[j].DocID
		}
		return records[i].Word < records[j].Word
	})
}

// TopPerDoc returns the n most salient records of each document, documents
// ordered by DocID. The input slice is not modified.
func TopPerDoc(records []Record, n int) []Record {
	if n <= 0 {
		return nil
	}

	byDoc := make(map[int64][]Record)
	var docIDs []int64
	for _, r := range records {
		if _, ok := byDoc[r.DocID]; !ok {
			docIDs = append(docIDs, r.DocID)
		}
		byDoc[r.DocID] = append(byDoc[r.DocID], r)
	}
	sort.Slice(docIDs, func(i, j int) bool { return docIDs[i] < docIDs[j] })

	var top []Record
	for _, id := range docIDs {
		rows := append([]Record(nil), byDoc[id]...)
		SortBySalience(rows)
		if len(rows) > n {
			rows = rows[:n]
		}
		top = append(top, rows...)
	}
	return top
}

// RankedRecord pairs a record with its within-document frequency rank.
type RankedRecord struct {
	Record
	Rank int64 // 1 = most frequent word in the document
}

// RankWithinDoc assigns ranks per document by descending raw count, words
// ascending on ties so ranking is consistent across runs. Used for the
// rank-frequency (Zipf) plot data; the 1/rank proportionality is a
// descriptive expectation, never enforced.
func RankWithinDoc(records []Record) []RankedRecord {
	byDoc := make(map[int64][]Record)
	var docIDs []int64
	for _, r := range records {
		if _, ok := byDoc[r.DocID]; !ok {
			docIDs = append(docIDs, r.DocID)
		}
		byDoc[r.DocID] = append(byDoc[r.DocID], r)
	}
	sort.Slice(docIDs, func(i, j int) bool { return docIDs[i] < docIDs[j] })

	var ranked []RankedRecord
	for _, id := range docIDs {
		rows := append([]Record(nil), byDoc[id]...)
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].N != rows[j].N {
				return rows[i].N > rows[j].N
			}
			return rows[i].Word < rows[j].Word
		})
		for i, r := range rows {
			ranked = append(ranked, RankedRecord{Record: r, Rank: int64(i + 1)})
		}
	}
	return ranked
}
