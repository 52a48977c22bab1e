package stopfilter

import (
	"reflect"
	"testing"
)

func TestFilterRemovesMembers(t *testing.T) {
	s := New([]string{"the", "of"})

	got := s.Filter([]string{"the", "art", "of", "war"})
	want := []string{"art", "war"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}
}

func TestFilterTotals(t *testing.T) {
	s := New([]string{"the"})

	tests := []struct {
		name   string
		tokens []string
		want   int
	}{
		{
			name:   "stopwords present shrink the total",
			tokens: []string{"the", "war", "the", "siege"},
			want:   2,
		},
		{
			name:   "no stopwords keeps the total",
			tokens: []string{"war", "siege"},
			want:   2,
		},
		{
			name:   "all stopwords",
			tokens: []string{"the", "the"},
			want:   0,
		},
		{
			name:   "empty input",
			tokens: nil,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Filter(tt.tokens)
			if len(got) != tt.want {
				t.Errorf("filtered length = %d, want %d", len(got), tt.want)
			}
			if len(got) > len(tt.tokens) {
				t.Error("filtering must never grow the token stream")
			}
		})
	}
}

func TestDefaultCoversBothLists(t *testing.T) {
	s := Default()

	// language stopwords
	for _, w := range []string{"the", "and", "of", "is"} {
		if !s.IsStop(w) {
			t.Errorf("default set should exclude %q", w)
		}
	}

	// curated scan artifacts
	for _, w := range []string{"chapter", "footnote", "thou", "ibid"} {
		if !s.IsStop(w) {
			t.Errorf("default set should exclude artifact %q", w)
		}
	}

	if s.IsStop("strategy") || s.IsStop("war") {
		t.Error("content words must not be excluded")
	}
}

func TestAddNormalizes(t *testing.T) {
	s := New(nil)

	s.Add("  Gutenberg ")
	if !s.IsStop("gutenberg") {
		t.Error("Add should lowercase and trim")
	}

	s.Add("")
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1 (empty words ignored)", s.Len())
	}

	s.AddAll([]string{"ebook", "transcriber"})
	if !s.IsStop("ebook") || !s.IsStop("transcriber") {
		t.Error("AddAll should include every word")
	}
}
