package main

import (
	"strings"
	"testing"
)

func TestPromptForPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"explicit path", "catalog.csv\n", "catalog.csv"},
		{"padded path", "  data/objects.csv  \n", "data/objects.csv"},
		{"blank line falls back to default", "\n", DefaultCatalogFile},
		{"eof falls back to default", "", DefaultCatalogFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got := promptForPath(strings.NewReader(tt.input), &out)
			if got != tt.expected {
				t.Errorf("promptForPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if !strings.Contains(out.String(), DefaultCatalogFile) {
				t.Errorf("prompt text missing default filename: %q", out.String())
			}
		})
	}
}
