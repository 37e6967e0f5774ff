package engine

import (
	"strings"
	"unicode"
)

// Token length bounds for keyword-density scoring. Values outside the
// configurable range fall back to the default.
const (
	minTokenLengthFloor   = 2
	minTokenLengthCeil    = 3
	defaultMinTokenLength = 3
)

// Normalizer lowercases, tokenizes and strips noise tokens from free text.
// Every method is a total function: empty or whitespace-only input yields an
// empty result, never an error.
type Normalizer struct {
	minTokenLen int
}

// NewNormalizer creates a normalizer dropping tokens shorter than
// minTokenLen runes. Only 2 and 3 are meaningful values.
func NewNormalizer(minTokenLen int) *Normalizer {
	if minTokenLen < minTokenLengthFloor || minTokenLen > minTokenLengthCeil {
		minTokenLen = defaultMinTokenLength
	}
	return &Normalizer{minTokenLen: minTokenLen}
}

// Lower returns the full lowercased, trimmed text. Substring and phrase
// checks run against this form so multi-word phrases survive intact.
func (n *Normalizer) Lower(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokens lowercases the text, splits on whitespace and drops tokens shorter
// than the configured minimum. Used for keyword-density scoring.
func (n *Normalizer) Tokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= n.minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// AllTokens lowercases and splits on whitespace without dropping anything.
// Density denominators use the raw token count.
func (n *Normalizer) AllTokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// wordSet lowercases the text, replaces every non-alphanumeric rune with a
// space and collects the resulting words. Whole-word bonus checks look
// tokens up here so punctuation does not mask a match.
func wordSet(text string) map[string]bool {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	words := strings.Fields(b.String())
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
