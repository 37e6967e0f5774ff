package engine

import (
	"math/rand"
	"testing"

	"github.com/pustakadigital/relevance/internal/domain"
)

func newTestMatchScorer() *MatchScorer {
	return NewMatchScorer(nopLogger{}, NewNormalizer(3), 1)
}

func TestScoreMatchComponents(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{ID: "b1", Title: "Sejarah Kebudayaan Jawa"}
	meta := &domain.BookMetadata{
		KeyThemes:        []string{"sejarah", "budaya"},
		GeographicFocus:  []string{"jawa"},
		HistoricalPeriod: []string{"kolonial"},
		ContentType:      "akademik",
	}
	col := domain.Collection{
		ID:   "c1",
		Name: "Koleksi Sejarah Jawa",
		Metadata: &domain.CollectionMetadata{
			KeyThemes:              []string{"sejarah", "budaya", "politik"},
			GeographicFocus:        []string{"jawa", "madura"},
			HistoricalContext:      "Naskah dari masa kolonial Hindia Belanda",
			ContentCharacteristics: []string{"akademik", "arsip"},
		},
	}

	res := m.ScoreMatch(book, meta, col)

	// themes 2*10 + region 1*10 + period 1*10 + content type 10
	if res.Score != 50 {
		t.Errorf("expected score 50, got %d", res.Score)
	}
	if res.Confidence != confidenceMedium {
		t.Errorf("expected confidence %.1f, got %.1f", confidenceMedium, res.Confidence)
	}
	if res.Source != domain.MetadataSupplied {
		t.Errorf("expected supplied metadata source, got %q", res.Source)
	}
	if res.Reasoning == "" {
		t.Error("expected non-empty reasoning")
	}
}

func TestScoreMatchThemeAndRegionOnly(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{ID: "b1", Title: "Buku"}
	meta := &domain.BookMetadata{
		KeyThemes:       []string{"sejarah"},
		GeographicFocus: []string{"jawa"},
	}
	col := domain.Collection{
		ID:   "c1",
		Name: "Koleksi",
		Metadata: &domain.CollectionMetadata{
			KeyThemes:       []string{"sejarah", "budaya"},
			GeographicFocus: []string{"jawa"},
		},
	}

	res := m.ScoreMatch(book, meta, col)

	if res.Score != 20 {
		t.Errorf("expected score 20, got %d", res.Score)
	}
	if res.Confidence != confidenceLow {
		t.Errorf("expected low confidence, got %.1f", res.Confidence)
	}
}

func TestScoreMatchComponentCaps(t *testing.T) {
	m := newTestMatchScorer()
	themes := []string{"a", "b", "c", "d", "e", "f"}
	regions := []string{"r1", "r2", "r3", "r4", "r5"}
	book := domain.CatalogRecord{ID: "b1", Title: "Buku"}
	meta := &domain.BookMetadata{KeyThemes: themes, GeographicFocus: regions}
	col := domain.Collection{
		ID:   "c1",
		Name: "Koleksi",
		Metadata: &domain.CollectionMetadata{
			KeyThemes:       themes,
			GeographicFocus: regions,
		},
	}

	res := m.ScoreMatch(book, meta, col)

	// 6 themes cap at 40, 5 regions cap at 30
	if res.Score != themeOverlapCap+regionOverlapCap {
		t.Errorf("expected capped score %d, got %d", themeOverlapCap+regionOverlapCap, res.Score)
	}
}

func TestScoreMatchCaseInsensitiveOverlap(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{ID: "b1", Title: "Buku"}
	meta := &domain.BookMetadata{KeyThemes: []string{"Sejarah"}}
	col := domain.Collection{
		ID:       "c1",
		Name:     "Koleksi",
		Metadata: &domain.CollectionMetadata{KeyThemes: []string{"SEJARAH"}},
	}

	if res := m.ScoreMatch(book, meta, col); res.Score != themeOverlapWeight {
		t.Errorf("expected case-insensitive theme overlap of %d, got %d", themeOverlapWeight, res.Score)
	}
}

func TestScoreMatchWithoutCollectionMetadata(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{ID: "b1", Title: "Buku"}
	col := domain.Collection{ID: "c1", Name: "Koleksi"}

	res := m.ScoreMatch(book, nil, col)

	if res.Score != 0 {
		t.Errorf("expected zero score without collection metadata, got %d", res.Score)
	}
	if res.Confidence != confidenceLow {
		t.Errorf("expected low confidence, got %.1f", res.Confidence)
	}
}

func TestScoreMatchInvalidCollection(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{ID: "b1", Title: "Buku"}

	res := m.ScoreMatch(book, nil, domain.Collection{Name: "Tanpa ID"})

	if res.Score != 0 || res.Confidence != confidenceLow {
		t.Errorf("expected degraded zero-score result, got %+v", res)
	}
}

func TestDeriveMetadataFromRecordText(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{
		ID:          "b1",
		Title:       "Sejarah Minangkabau",
		Description: "Kajian adat dan masyarakat di Sumatera Barat",
	}

	meta, source := m.ResolveMetadata(book, nil)

	if source != domain.MetadataDerived {
		t.Fatalf("expected derived source, got %q", source)
	}
	if !containsFold(meta.KeyThemes, "sejarah") || !containsFold(meta.KeyThemes, "budaya") {
		t.Errorf("expected sejarah and budaya themes, got %v", meta.KeyThemes)
	}
	if !containsFold(meta.GeographicFocus, "minangkabau") {
		t.Errorf("expected minangkabau region, got %v", meta.GeographicFocus)
	}
	if meta.ContentType != fallbackDefaultContentType {
		t.Errorf("expected default content type, got %q", meta.ContentType)
	}
	if len(meta.HistoricalPeriod) == 0 {
		t.Error("expected default historical period")
	}
}

func TestRecommendCollections(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{ID: "b1", Title: "Sejarah Jawa"}
	meta := &domain.BookMetadata{
		KeyThemes:       []string{"sejarah"},
		GeographicFocus: []string{"jawa"},
	}
	candidates := []domain.Collection{
		{ID: "c1", Name: "Arsip Umum", Metadata: &domain.CollectionMetadata{KeyThemes: []string{"arsip"}}},
		{ID: "c2", Name: "Sejarah Jawa", Metadata: &domain.CollectionMetadata{
			KeyThemes:       []string{"sejarah"},
			GeographicFocus: []string{"jawa"},
		}},
		{ID: "c3", Name: "Sudah Berisi", BookIDs: []string{"b1"}},
		{ID: "c4", Name: "Sejarah Umum", Metadata: &domain.CollectionMetadata{KeyThemes: []string{"sejarah"}}},
		{ID: "c5", Name: "Dokumen Lain"},
	}

	recs := m.RecommendCollections(book, meta, candidates)

	if len(recs) != maxRecommendations {
		t.Fatalf("expected %d recommendations, got %d", maxRecommendations, len(recs))
	}
	for _, rec := range recs {
		if rec.Item.ID == "c3" {
			t.Error("collections already holding the book must be excluded")
		}
	}
	if recs[0].Item.ID != "c2" {
		t.Errorf("expected c2 with the highest overlap first, got %q", recs[0].Item.ID)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("scores must be descending, got %d after %d", recs[i].Score, recs[i-1].Score)
		}
	}
}

func TestRecommendCollectionsKeepsUnscorableWithZero(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{ID: "b1", Title: "Sejarah Jawa"}
	meta := &domain.BookMetadata{KeyThemes: []string{"sejarah"}}
	candidates := []domain.Collection{
		{ID: "c1", Name: "Sejarah", Metadata: &domain.CollectionMetadata{KeyThemes: []string{"sejarah"}}},
		{Name: "Rusak"}, // no id
	}

	recs := m.RecommendCollections(book, meta, candidates)

	if len(recs) != 2 {
		t.Fatalf("expected both candidates kept, got %d", len(recs))
	}
	last := recs[len(recs)-1]
	if last.Item.Name != "Rusak" || last.Score != 0 {
		t.Errorf("expected the corrupt collection last with zero score, got %+v", last)
	}
	if last.Provenance != domain.ProvenanceFallback {
		t.Errorf("expected fallback provenance, got %q", last.Provenance)
	}
}

func TestRecommendCollectionsEmergencyFallback(t *testing.T) {
	// A scorer without its collator panics while sorting; the pass must
	// degrade to synthetic recommendations instead of crashing.
	m := &MatchScorer{
		logger: nopLogger{},
		norm:   NewNormalizer(3),
		rng:    rand.New(rand.NewSource(1)),
	}
	book := domain.CatalogRecord{ID: "b1", Title: "Buku"}
	candidates := []domain.Collection{
		{ID: "c1", Name: "Koleksi Satu"},
		{ID: "c2", Name: "Koleksi Dua"},
		{ID: "c3", Name: "Koleksi Tiga"},
	}

	recs := m.RecommendCollections(book, nil, candidates)

	if len(recs) != maxRecommendations {
		t.Fatalf("expected %d emergency recommendations, got %d", maxRecommendations, len(recs))
	}
	for i, rec := range recs {
		if rec.Provenance != domain.ProvenanceEmergency {
			t.Errorf("recommendation %d: expected emergency provenance, got %q", i, rec.Provenance)
		}
		if rec.Confidence != emergencyConfidence {
			t.Errorf("recommendation %d: expected confidence %.1f, got %.1f", i, emergencyConfidence, rec.Confidence)
		}
		want := emergencyBaseScore + emergencyScoreStep*i
		if rec.Score != want {
			t.Errorf("recommendation %d: expected synthetic score %d, got %d", i, want, rec.Score)
		}
	}
	if recs[0].Score != 50 || recs[1].Score != 60 || recs[2].Score != 70 {
		t.Errorf("expected synthetic sequence 50/60/70, got %d/%d/%d",
			recs[0].Score, recs[1].Score, recs[2].Score)
	}
}

func TestScoreMatchFullOverlapReachesMaximum(t *testing.T) {
	m := newTestMatchScorer()
	book := domain.CatalogRecord{ID: "b1", Title: "Buku"}
	meta := &domain.BookMetadata{
		KeyThemes:        []string{"sejarah", "budaya", "politik", "agama"},
		GeographicFocus:  []string{"jawa", "sumatera", "bali"},
		HistoricalPeriod: []string{"kolonial", "kemerdekaan"},
		ContentType:      "akademik",
	}
	col := domain.Collection{
		ID:   "c1",
		Name: "Koleksi",
		Metadata: &domain.CollectionMetadata{
			KeyThemes:              []string{"sejarah", "budaya", "politik", "agama"},
			GeographicFocus:        []string{"jawa", "sumatera", "bali"},
			HistoricalContext:      "naskah masa kolonial hingga awal kemerdekaan",
			ContentCharacteristics: []string{"akademik"},
		},
	}

	res := m.ScoreMatch(book, meta, col)

	// every component at its cap: 40 + 30 + 20 + 10
	if res.Score != maxMatchScore {
		t.Errorf("expected maximum score %d, got %d", maxMatchScore, res.Score)
	}
	if res.Confidence != confidenceVeryHigh {
		t.Errorf("expected confidence %.1f, got %.1f", confidenceVeryHigh, res.Confidence)
	}
}

func TestReasoningDeterministicPerSeed(t *testing.T) {
	book := domain.CatalogRecord{ID: "b1", Title: "Buku"}
	meta := &domain.BookMetadata{KeyThemes: []string{"sejarah"}}
	col := domain.Collection{
		ID:       "c1",
		Name:     "Koleksi",
		Metadata: &domain.CollectionMetadata{KeyThemes: []string{"sejarah"}},
	}

	a := NewMatchScorer(nopLogger{}, NewNormalizer(3), 42).ScoreMatch(book, meta, col)
	b := NewMatchScorer(nopLogger{}, NewNormalizer(3), 42).ScoreMatch(book, meta, col)

	if a.Reasoning != b.Reasoning {
		t.Errorf("same seed must yield the same reasoning: %q vs %q", a.Reasoning, b.Reasoning)
	}
}

func TestConfidenceForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected float64
	}{
		{100, confidenceVeryHigh},
		{80, confidenceVeryHigh},
		{79, confidenceHigh},
		{60, confidenceHigh},
		{59, confidenceMedium},
		{40, confidenceMedium},
		{39, confidenceLow},
		{0, confidenceLow},
	}
	for _, tt := range tests {
		if got := confidenceForScore(tt.score); got != tt.expected {
			t.Errorf("score %d: expected %.1f, got %.1f", tt.score, tt.expected, got)
		}
	}
}
