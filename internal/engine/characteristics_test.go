package engine

import (
	"testing"

	"github.com/pustakadigital/relevance/internal/domain"
)

func newTestComposer() *Composer {
	norm := NewNormalizer(3)
	return NewComposer(nopLogger{},
		NewTopicExtractor(nopLogger{}),
		NewLanguageClassifier(nopLogger{}, norm))
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int // 0 means nil
	}{
		{name: "plain year", raw: "1952", expected: 1952},
		{name: "bracketed year", raw: "[1952]", expected: 1952},
		{name: "circa prefix", raw: "ca. 1880", expected: 1880},
		{name: "parenthesized", raw: "(2005)", expected: 2005},
		{name: "first plausible year wins", raw: "1890-1912", expected: 1890},
		{name: "censored decade", raw: "19--", expected: 0},
		{name: "too old", raw: "1399", expected: 0},
		{name: "empty", raw: "", expected: 0},
		{name: "no digits", raw: "s.a.", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseYear(tt.raw)
			if tt.expected == 0 {
				if got != nil {
					t.Errorf("expected nil, got %d", *got)
				}
				return
			}
			if got == nil || *got != tt.expected {
				t.Errorf("expected %d, got %v", tt.expected, got)
			}
		})
	}
}

func TestEraForYear(t *testing.T) {
	tests := []struct {
		year     int
		expected domain.Era
	}{
		{1500, domain.EraPreColonial},
		{1601, domain.EraPreColonial},
		{1602, domain.EraColonial},
		{1944, domain.EraColonial},
		{1945, domain.EraEarlyIndependence},
		{1965, domain.EraEarlyIndependence},
		{1966, domain.EraNewOrder},
		{1997, domain.EraNewOrder},
		{1998, domain.EraReform},
		{2020, domain.EraReform},
	}
	for _, tt := range tests {
		year := tt.year
		if got := EraForYear(&year); got != tt.expected {
			t.Errorf("year %d: expected %q, got %q", tt.year, tt.expected, got)
		}
	}
	if got := EraForYear(nil); got != domain.EraUnknown {
		t.Errorf("nil year: expected unknown, got %q", got)
	}
}

func TestComposeFullSignal(t *testing.T) {
	c := newTestComposer()
	rec := domain.CatalogRecord{
		ID:      "r1",
		Title:   "Serat Centhini: Kajian Filsafat Jawa",
		YearRaw: "[1912]",
	}

	ch := c.Compose(rec)

	if ch.Year == nil || *ch.Year != 1912 {
		t.Fatalf("expected year 1912, got %v", ch.Year)
	}
	if ch.Era != domain.EraColonial {
		t.Errorf("expected colonial era, got %q", ch.Era)
	}
	if ch.Language != domain.LangJavanese {
		t.Errorf("expected jv, got %q", ch.Language)
	}
	if len(ch.Topics) == 0 || ch.Topics[0] != "filsafat" {
		t.Errorf("expected filsafat topic, got %v", ch.Topics)
	}
	// year + dictionary topic + title shortcut all resolved
	if ch.Confidence != 1.0 {
		t.Errorf("expected full confidence, got %.2f", ch.Confidence)
	}
}

func TestComposeNoSignal(t *testing.T) {
	c := newTestComposer()
	rec := domain.CatalogRecord{ID: "r2", Title: "Kumpulan Catatan Harian"}

	ch := c.Compose(rec)

	if ch.Year != nil {
		t.Errorf("expected nil year, got %d", *ch.Year)
	}
	if ch.Era != domain.EraUnknown {
		t.Errorf("expected unknown era, got %q", ch.Era)
	}
	if ch.Language != domain.DefaultLanguage {
		t.Errorf("expected default language, got %q", ch.Language)
	}
	if len(ch.Topics) != 1 || ch.Topics[0] != defaultTopic {
		t.Errorf("expected default topic, got %v", ch.Topics)
	}
	if ch.Confidence != composerBaseConfidence {
		t.Errorf("expected base confidence, got %.2f", ch.Confidence)
	}
}
