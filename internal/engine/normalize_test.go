package engine

import (
	"reflect"
	"testing"
)

func TestNormalizerTokens(t *testing.T) {
	tests := []struct {
		name     string
		minLen   int
		input    string
		expected []string
	}{
		{
			name:     "drops short tokens at default length",
			minLen:   3,
			input:    "Sejarah di Nusantara",
			expected: []string{"sejarah", "nusantara"},
		},
		{
			name:     "keeps two-rune tokens when configured",
			minLen:   2,
			input:    "Sejarah di Nusantara",
			expected: []string{"sejarah", "di", "nusantara"},
		},
		{
			name:     "out of range min falls back to default",
			minLen:   7,
			input:    "ki ageng sela",
			expected: []string{"ageng", "sela"},
		},
		{
			name:     "empty input",
			minLen:   3,
			input:    "   ",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewNormalizer(tt.minLen).Tokens(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNormalizerLower(t *testing.T) {
	n := NewNormalizer(3)
	if got := n.Lower("  Sejarah NUSANTARA  "); got != "sejarah nusantara" {
		t.Errorf("expected trimmed lowercase, got %q", got)
	}
	if got := n.Lower(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestWordSet(t *testing.T) {
	set := wordSet("Serat Centhini: Kajian (Filsafat) Jawa")
	for _, w := range []string{"serat", "centhini", "kajian", "filsafat", "jawa"} {
		if !set[w] {
			t.Errorf("expected word %q in set", w)
		}
	}
	if set[""] {
		t.Error("empty string must not be in set")
	}
}
