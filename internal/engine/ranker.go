package engine

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pustakadigital/relevance/internal/domain"
)

// Candidate selection and scoring weights for search ranking.
const (
	// exactPhraseThreshold is the minimum number of phrase hits that makes
	// the phrase result set sufficient on its own. Below it, per-word
	// matches are pulled in as well.
	exactPhraseThreshold = 8

	phraseTitleScore     = 100
	phraseAuthorScore    = 80
	phrasePublisherScore = 60

	wordTitleScore     = 30
	wordAuthorScore    = 20
	wordPublisherScore = 10

	wholeWordTitleBonus  = 15
	wholeWordAuthorBonus = 10

	shortTitleBonus  = 5
	shortTitleLength = 50
)

// Ranker scores catalog records against a free-text query. Results are
// deduplicated by record id and ordered by score descending, with ties
// broken by an Indonesian-collation title comparison so output is stable
// across runs and platforms.
type Ranker struct {
	logger   Logger
	norm     *Normalizer
	collator *collate.Collator
}

// NewRanker creates a ranker with an Indonesian collator for tie-breaks.
func NewRanker(logger Logger, norm *Normalizer) *Ranker {
	return &Ranker{
		logger:   logger,
		norm:     norm,
		collator: collate.New(language.Indonesian),
	}
}

// Rank selects candidate records for the query and returns them scored and
// sorted. An empty or whitespace-only query yields an empty result.
func (r *Ranker) Rank(records []domain.CatalogRecord, query string) []domain.Scored[domain.CatalogRecord] {
	q := r.norm.Lower(query)
	if q == "" {
		return []domain.Scored[domain.CatalogRecord]{}
	}
	words := strings.Fields(q)
	candidates := r.selectCandidates(records, q, words)

	seen := make(map[string]bool, len(candidates))
	results := make([]domain.Scored[domain.CatalogRecord], 0, len(candidates))
	for _, rec := range candidates {
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		score, matchType := r.scoreRecord(rec, q, words)
		results = append(results, domain.Scored[domain.CatalogRecord]{
			Item:       rec,
			Score:      score,
			MatchType:  matchType,
			Provenance: domain.ProvenanceGenuine,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return r.collator.CompareString(results[i].Item.Title, results[j].Item.Title) < 0
	})

	r.logger.Debug("search ranked",
		"query", query,
		"candidates", len(candidates),
		"results", len(results))
	return results
}

// selectCandidates runs the two retrieval phases: exact-phrase matches
// first, widened with per-word matches when the phrase set is too small to
// stand on its own.
func (r *Ranker) selectCandidates(records []domain.CatalogRecord, q string, words []string) []domain.CatalogRecord {
	phrase := make([]domain.CatalogRecord, 0)
	for _, rec := range records {
		if matchesPhrase(rec, q) {
			phrase = append(phrase, rec)
		}
	}
	if len(phrase) >= exactPhraseThreshold {
		return phrase
	}

	union := phrase
	for _, rec := range records {
		if matchesPhrase(rec, q) {
			continue
		}
		if matchesAnyWord(rec, words) {
			union = append(union, rec)
		}
	}
	return union
}

func matchesPhrase(rec domain.CatalogRecord, q string) bool {
	return strings.Contains(strings.ToLower(rec.Title), q) ||
		strings.Contains(strings.ToLower(rec.Author), q) ||
		strings.Contains(strings.ToLower(rec.Publisher), q)
}

func matchesAnyWord(rec domain.CatalogRecord, words []string) bool {
	title := strings.ToLower(rec.Title)
	author := strings.ToLower(rec.Author)
	publisher := strings.ToLower(rec.Publisher)
	for _, w := range words {
		if strings.Contains(title, w) || strings.Contains(author, w) || strings.Contains(publisher, w) {
			return true
		}
	}
	return false
}

// scoreRecord computes the additive relevance score of one record. Phrase
// hits on any field dominate; per-word substring hits, whole-word bonuses
// and the short-title bonus refine the ordering below them.
func (r *Ranker) scoreRecord(rec domain.CatalogRecord, q string, words []string) (int, domain.MatchType) {
	title := strings.ToLower(rec.Title)
	author := strings.ToLower(rec.Author)
	publisher := strings.ToLower(rec.Publisher)

	score := 0
	matchType := domain.MatchWord
	if strings.Contains(title, q) {
		score += phraseTitleScore
		matchType = domain.MatchPhrase
	}
	if author != "" && strings.Contains(author, q) {
		score += phraseAuthorScore
		matchType = domain.MatchPhrase
	}
	if publisher != "" && strings.Contains(publisher, q) {
		score += phrasePublisherScore
		matchType = domain.MatchPhrase
	}

	for _, w := range words {
		if strings.Contains(title, w) {
			score += wordTitleScore
		}
		if strings.Contains(author, w) {
			score += wordAuthorScore
		}
		if strings.Contains(publisher, w) {
			score += wordPublisherScore
		}
	}

	titleWords := wordSet(rec.Title)
	authorWords := wordSet(rec.Author)
	for _, w := range words {
		if titleWords[w] {
			score += wholeWordTitleBonus
		}
		if authorWords[w] {
			score += wholeWordAuthorBonus
		}
	}

	if utf8.RuneCountInString(rec.Title) < shortTitleLength {
		score += shortTitleBonus
	}
	return score, matchType
}
