package domain

// MatchType records which retrieval phase produced a search result.
type MatchType string

// Match types.
const (
	MatchPhrase MatchType = "phrase"
	MatchWord   MatchType = "word"
)

// Provenance tags whether a score was genuinely computed or produced by a
// degraded path. Callers can branch exhaustively instead of checking ad hoc
// booleans.
type Provenance string

// Provenance values.
const (
	// ProvenanceGenuine marks a score computed by the primary pipeline.
	ProvenanceGenuine Provenance = "genuine"
	// ProvenanceFallback marks a score computed after a per-item failure
	// (the item was kept with a neutral score instead of aborting a batch).
	ProvenanceFallback Provenance = "fallback"
	// ProvenanceEmergency marks a synthetic score from the degraded-mode
	// path used when the whole scoring pass is unavailable.
	ProvenanceEmergency Provenance = "emergency"
)

// Scored wraps an entity with its computed score. The relevance ranker and
// the match scorer both return lists of Scored values: lists are always
// deduplicated by entity id and sorted by score descending with a
// deterministic secondary key, so ties are reproducible.
type Scored[T any] struct {
	Item       T          `json:"item"`
	Score      int        `json:"score"`
	MatchType  MatchType  `json:"match_type,omitempty"`
	Confidence float64    `json:"confidence,omitempty"`
	Reasoning  string     `json:"reasoning,omitempty"`
	Provenance Provenance `json:"provenance"`
}
