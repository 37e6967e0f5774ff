package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pustakadigital/relevance/internal/domain"
)

// Component weights of the collection match score. Each component is capped
// so a single strong signal cannot dominate the others, and the total is
// clamped to maxMatchScore.
const (
	themeOverlapWeight = 10
	themeOverlapCap    = 40

	regionOverlapWeight = 10
	regionOverlapCap    = 30

	periodMatchWeight = 10
	periodMatchCap    = 20

	contentTypeScore = 10

	maxMatchScore      = 100
	maxRecommendations = 3
)

// Synthetic scoring used by the emergency path.
const (
	emergencyBaseScore  = 50
	emergencyScoreStep  = 10
	emergencyConfidence = confidenceLow
)

// MatchResult is the outcome of scoring one book against one collection.
type MatchResult struct {
	Score      int
	Confidence float64
	Reasoning  string
	Source     domain.MetadataSource
}

// MatchScorer scores how well a book fits a curated collection by comparing
// structured metadata: theme overlap, geographic overlap, historical-period
// mentions and content type. Books without supplied metadata get it derived
// from their record text first.
//
// Failures degrade instead of propagating: a collection that cannot be
// scored is kept with a zero score, and a failure of the whole pass yields
// synthetic emergency recommendations.
type MatchScorer struct {
	logger   Logger
	norm     *Normalizer
	collator *collate.Collator

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMatchScorer creates a scorer. The seed drives only reasoning-template
// selection; scores themselves are fully deterministic.
func NewMatchScorer(logger Logger, norm *Normalizer, seed int64) *MatchScorer {
	return &MatchScorer{
		logger:   logger,
		norm:     norm,
		collator: collate.New(language.Indonesian),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// ScoreMatch scores a single book/collection pair. meta may be nil, in which
// case metadata is derived from the record text. Internal failures are
// logged and replaced by a zero-score result.
func (m *MatchScorer) ScoreMatch(book domain.CatalogRecord, meta *domain.BookMetadata, col domain.Collection) MatchResult {
	res, err := m.scoreOne(book, meta, col)
	if err != nil {
		m.logger.Error("match scoring failed, returning zero score",
			"book_id", book.ID,
			"collection_id", col.ID,
			"error", err)
		return MatchResult{
			Score:      0,
			Confidence: confidenceLow,
			Reasoning:  m.reasoning(0, nil, nil),
			Source:     domain.MetadataDerived,
		}
	}
	return res
}

// RecommendCollections scores the book against every candidate collection
// it is not already part of and returns the top matches, highest score
// first with collection-name tie-breaks. If the whole pass fails, synthetic
// emergency recommendations are returned so callers always get output.
func (m *MatchScorer) RecommendCollections(book domain.CatalogRecord, meta *domain.BookMetadata, candidates []domain.Collection) (recs []domain.Scored[domain.Collection]) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("recommendation pass failed, emitting emergency fallback",
				"book_id", book.ID,
				"panic", fmt.Sprint(r))
			recs = m.emergencyFallback(book, candidates)
		}
	}()

	scored := make([]domain.Scored[domain.Collection], 0, len(candidates))
	for _, col := range candidates {
		if col.Contains(book.ID) {
			continue
		}
		res, err := m.scoreOne(book, meta, col)
		if err != nil {
			m.logger.Warn("collection could not be scored, keeping with zero score",
				"book_id", book.ID,
				"collection_id", col.ID,
				"error", err)
			scored = append(scored, domain.Scored[domain.Collection]{
				Item:       col,
				Score:      0,
				Confidence: confidenceLow,
				Reasoning:  m.reasoning(0, nil, nil),
				Provenance: domain.ProvenanceFallback,
			})
			continue
		}
		scored = append(scored, domain.Scored[domain.Collection]{
			Item:       col,
			Score:      res.Score,
			Confidence: res.Confidence,
			Reasoning:  res.Reasoning,
			Provenance: domain.ProvenanceGenuine,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return m.collator.CompareString(scored[i].Item.Name, scored[j].Item.Name) < 0
	})
	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored
}

// scoreOne validates and scores a single pair, converting panics from
// malformed collection data into errors so one bad candidate cannot sink a
// batch.
func (m *MatchScorer) scoreOne(book domain.CatalogRecord, meta *domain.BookMetadata, col domain.Collection) (res MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = classificationErrf("matcher", "score collection %q: panic: %v", col.ID, r)
		}
	}()

	if col.ID == "" {
		return MatchResult{}, classificationErrf("matcher", "collection has no id")
	}

	bookMeta, source := m.ResolveMetadata(book, meta)
	if col.Metadata == nil {
		return MatchResult{
			Score:      0,
			Confidence: confidenceForScore(0),
			Reasoning:  m.reasoning(0, nil, nil),
			Source:     source,
		}, nil
	}

	themes := intersectFold(bookMeta.KeyThemes, col.Metadata.KeyThemes)
	regions := intersectFold(bookMeta.GeographicFocus, col.Metadata.GeographicFocus)

	score := capped(themeOverlapWeight*len(themes), themeOverlapCap)
	score += capped(regionOverlapWeight*len(regions), regionOverlapCap)
	score += capped(periodMatchWeight*countPeriodMentions(bookMeta.HistoricalPeriod, col.Metadata.HistoricalContext), periodMatchCap)
	if containsFold(col.Metadata.ContentCharacteristics, bookMeta.ContentType) {
		score += contentTypeScore
	}
	if score > maxMatchScore {
		score = maxMatchScore
	}

	return MatchResult{
		Score:      score,
		Confidence: confidenceForScore(score),
		Reasoning:  m.reasoning(score, themes, regions),
		Source:     source,
	}, nil
}

// ResolveMetadata returns the supplied metadata when present, otherwise
// derives metadata from the record text.
func (m *MatchScorer) ResolveMetadata(book domain.CatalogRecord, meta *domain.BookMetadata) (domain.BookMetadata, domain.MetadataSource) {
	if meta != nil {
		return *meta, domain.MetadataSupplied
	}
	return m.deriveMetadata(book), domain.MetadataDerived
}

// deriveMetadata is the fallback extractor: it scans the record title and
// description for theme and region keywords and fills the rest with the
// catalog defaults.
func (m *MatchScorer) deriveMetadata(book domain.CatalogRecord) domain.BookMetadata {
	text := m.norm.Lower(book.Title + " " + book.Description)
	return domain.BookMetadata{
		KeyThemes:        collectTags(fallbackThemeRules, text),
		GeographicFocus:  collectTags(fallbackRegionRules, text),
		HistoricalPeriod: append([]string(nil), fallbackDefaultPeriods...),
		ContentType:      fallbackDefaultContentType,
	}
}

func (m *MatchScorer) emergencyFallback(book domain.CatalogRecord, candidates []domain.Collection) []domain.Scored[domain.Collection] {
	out := make([]domain.Scored[domain.Collection], 0, maxRecommendations)
	for _, col := range candidates {
		if col.Contains(book.ID) {
			continue
		}
		out = append(out, domain.Scored[domain.Collection]{
			Item:       col,
			Score:      emergencyBaseScore + emergencyScoreStep*len(out),
			Confidence: emergencyConfidence,
			Reasoning:  "Rekomendasi darurat: skor kecocokan belum dapat dihitung.",
			Provenance: domain.ProvenanceEmergency,
		})
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

// reasoning composes the Indonesian reasoning line from the score tier and
// the concrete overlaps found.
func (m *MatchScorer) reasoning(score int, themes, regions []string) string {
	tier := tierForScore(score)

	var parts []string
	if len(themes) > 0 {
		parts = append(parts, "tema yang sama: "+strings.Join(themes, ", "))
	}
	if len(regions) > 0 {
		parts = append(parts, "fokus wilayah yang sama: "+strings.Join(regions, ", "))
	}
	detail := reasoningNoOverlapDetail
	if len(parts) > 0 {
		detail = strings.Join(parts, " dan ")
	}

	m.mu.Lock()
	template := tier.templates[m.rng.Intn(len(tier.templates))]
	m.mu.Unlock()
	return fmt.Sprintf(template, tier.label, detail)
}

func capped(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

// intersectFold returns the case-insensitive intersection of a and b,
// preserving a's order and casing and dropping duplicates.
func intersectFold(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[strings.ToLower(strings.TrimSpace(s))] = true
	}
	var out []string
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || !set[key] || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func containsFold(haystack []string, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}
	for _, s := range haystack {
		if strings.ToLower(strings.TrimSpace(s)) == needle {
			return true
		}
	}
	return false
}

// countPeriodMentions counts how many of the book's historical periods are
// mentioned in the collection's free-text historical context.
func countPeriodMentions(periods []string, context string) int {
	context = strings.ToLower(context)
	if context == "" {
		return 0
	}
	n := 0
	for _, p := range periods {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && strings.Contains(context, p) {
			n++
		}
	}
	return n
}

func collectTags(rules []keywordTag, text string) []string {
	var tags []string
	for _, rule := range rules {
		if containsAny(text, rule.Keywords) {
			tags = append(tags, rule.Tag)
		}
	}
	return tags
}
