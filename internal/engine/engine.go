// Package engine implements the deterministic relevance pipeline: search
// ranking, collection match scoring, topic extraction, language
// classification and characteristics composition. Everything is rule-based
// and reproducible: the same input always yields the same scores.
package engine

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/pustakadigital/relevance/internal/domain"
	"github.com/pustakadigital/relevance/internal/telemetry"
)

// Config holds the tunables of the engine.
type Config struct {
	// Version is reported alongside results for audit trails.
	Version string
	// MinTokenLength is the shortest token kept by the normalizer (2 or 3).
	MinTokenLength int
	// ReasoningSeed drives reasoning-template variety. Fix it for
	// reproducible reasoning text.
	ReasoningSeed int64
}

// Engine bundles the pipeline components behind one façade. All operations
// are total: they log internal failures and return defaults instead of
// erroring, so a caller always gets usable output.
type Engine struct {
	logger    Logger
	telemetry *telemetry.Provider
	version   string

	norm     *Normalizer
	topics   *TopicExtractor
	language *LanguageClassifier
	ranker   *Ranker
	matcher  *MatchScorer
	composer *Composer
}

// New assembles the engine. telemetryProvider may be nil.
func New(logger Logger, telemetryProvider *telemetry.Provider, cfg Config) *Engine {
	norm := NewNormalizer(cfg.MinTokenLength)
	topics := NewTopicExtractor(logger)
	language := NewLanguageClassifier(logger, norm)

	return &Engine{
		logger:    logger,
		telemetry: telemetryProvider,
		version:   cfg.Version,
		norm:      norm,
		topics:    topics,
		language:  language,
		ranker:    NewRanker(logger, norm),
		matcher:   NewMatchScorer(logger, norm, cfg.ReasoningSeed),
		composer:  NewComposer(logger, topics, language),
	}
}

// Version reports the engine version string.
func (e *Engine) Version() string {
	return e.version
}

// Search ranks the given catalog records against the query.
func (e *Engine) Search(ctx context.Context, records []domain.CatalogRecord, query string) []domain.Scored[domain.CatalogRecord] {
	_, span := e.telemetry.StartSpan(ctx, "engine.search",
		attribute.Int("candidates", len(records)))
	defer span.End()

	start := time.Now()
	results := e.ranker.Rank(records, query)
	e.telemetry.RecordSearch(time.Since(start))

	e.logger.Info("search completed",
		"query", query,
		"candidates", len(records),
		"results", len(results))
	return results
}

// Recommend scores the book against the candidate collections and returns
// the top recommendations. meta may be nil.
func (e *Engine) Recommend(ctx context.Context, book domain.CatalogRecord, meta *domain.BookMetadata, candidates []domain.Collection) []domain.Scored[domain.Collection] {
	_, span := e.telemetry.StartSpan(ctx, "engine.recommend",
		attribute.String("book_id", book.ID),
		attribute.Int("candidates", len(candidates)))
	defer span.End()

	start := time.Now()
	recs := e.matcher.RecommendCollections(book, meta, candidates)
	emergency := len(recs) > 0 && recs[0].Provenance == domain.ProvenanceEmergency
	e.telemetry.RecordRecommendation(time.Since(start), emergency)

	e.logger.Info("recommendations computed",
		"book_id", book.ID,
		"candidates", len(candidates),
		"recommendations", len(recs),
		"emergency", emergency)
	return recs
}

// ScoreMatch scores one book against one collection.
func (e *Engine) ScoreMatch(ctx context.Context, book domain.CatalogRecord, meta *domain.BookMetadata, col domain.Collection) MatchResult {
	_, span := e.telemetry.StartSpan(ctx, "engine.score_match",
		attribute.String("book_id", book.ID),
		attribute.String("collection_id", col.ID))
	defer span.End()

	return e.matcher.ScoreMatch(book, meta, col)
}

// Characteristics derives the characteristics bundle of one record.
func (e *Engine) Characteristics(ctx context.Context, rec domain.CatalogRecord) domain.Characteristics {
	_, span := e.telemetry.StartSpan(ctx, "engine.characteristics",
		attribute.String("record_id", rec.ID))
	defer span.End()

	ch := e.composer.Compose(rec)
	e.telemetry.RecordClassification(string(ch.Language))
	return ch
}

// CharacteristicsBatch derives characteristics for a batch of records.
// Items are independent: output order matches input order.
func (e *Engine) CharacteristicsBatch(ctx context.Context, recs []domain.CatalogRecord) []domain.Characteristics {
	_, span := e.telemetry.StartSpan(ctx, "engine.characteristics_batch",
		attribute.Int("records", len(recs)))
	defer span.End()

	out := make([]domain.Characteristics, len(recs))
	for i, rec := range recs {
		out[i] = e.composer.Compose(rec)
		e.telemetry.RecordClassification(string(out[i].Language))
	}
	e.logger.Info("batch classified", "records", len(recs))
	return out
}

// DetectLanguage classifies free text.
func (e *Engine) DetectLanguage(ctx context.Context, text string) domain.LanguageCode {
	_, span := e.telemetry.StartSpan(ctx, "engine.detect_language")
	defer span.End()

	code := e.language.DetectLanguage(text)
	e.telemetry.RecordClassification(string(code))
	return code
}

// ExtractTopics extracts topic categories from a title.
func (e *Engine) ExtractTopics(ctx context.Context, title string) []string {
	_, span := e.telemetry.StartSpan(ctx, "engine.extract_topics")
	defer span.End()

	e.telemetry.RecordTopicExtraction()
	return e.topics.ExtractTopics(title)
}
