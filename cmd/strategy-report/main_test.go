package main

import "testing"

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		cache   string
		wantErr bool
	}{
		{name: "input only", input: "docs.jsonl", wantErr: false},
		{name: "cache only", cache: "cache.db", wantErr: false},
		{name: "neither", wantErr: true},
		{name: "both", input: "docs.jsonl", cache: "cache.db", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSource(tt.input, tt.cache)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkSource(%q, %q) = %v, wantErr %v", tt.input, tt.cache, err, tt.wantErr)
			}
		})
	}
}
