package engine

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// maxTopics caps how many categories a single title can carry.
const maxTopics = 3

// TopicExtractor assigns topic categories to catalog titles by scanning for
// dictionary keywords with an Aho-Corasick automaton built once at startup.
type TopicExtractor struct {
	logger   Logger
	matcher  *ahocorasick.Matcher
	ruleFor  []int // keyword index -> topicRules index
	numRules int
}

// NewTopicExtractor compiles the topic keyword dictionary into a matcher.
func NewTopicExtractor(logger Logger) *TopicExtractor {
	keywords := make([]string, 0, 8*len(topicRules))
	ruleFor := make([]int, 0, cap(keywords))
	for i, rule := range topicRules {
		for _, kw := range rule.Keywords {
			keywords = append(keywords, kw)
			ruleFor = append(ruleFor, i)
		}
	}
	return &TopicExtractor{
		logger:   logger,
		matcher:  ahocorasick.NewStringMatcher(keywords),
		ruleFor:  ruleFor,
		numRules: len(topicRules),
	}
}

// ExtractTopics returns up to maxTopics categories for a title. It never
// returns an empty slice: titles with no dictionary hit fall back to
// contextual hints and finally to the default category.
func (t *TopicExtractor) ExtractTopics(title string) []string {
	topics, _ := t.extract(title)
	return topics
}

// extract reports the topics and whether they came from a dictionary match
// rather than a fallback. The characteristics composer uses the flag when
// weighing its confidence.
func (t *TopicExtractor) extract(title string) ([]string, bool) {
	lower := strings.ToLower(strings.TrimSpace(title))
	if lower == "" {
		return []string{defaultTopic}, false
	}

	// MatchThreadSafe, not Match: the automaton is shared by every request
	// and plain Match mutates per-node counters.
	matched := make([]bool, t.numRules)
	for _, hit := range t.matcher.MatchThreadSafe([]byte(lower)) {
		if hit >= 0 && hit < len(t.ruleFor) {
			matched[t.ruleFor[hit]] = true
		}
	}

	topics := make([]string, 0, maxTopics)
	for i := range topicRules {
		if !matched[i] {
			continue
		}
		topics = append(topics, topicRules[i].Category)
		if len(topics) == maxTopics {
			break
		}
	}
	if len(topics) > 0 {
		t.logger.Debug("topics extracted from dictionary",
			"title", title,
			"topics", topics)
		return topics, true
	}

	if containsAny(lower, fallbackGeographicNames) {
		t.logger.Debug("topics from geographic fallback", "title", title)
		return append([]string(nil), fallbackGeographicTopics...), false
	}
	if containsAny(lower, fallbackGovernmentTerms) {
		t.logger.Debug("topics from government fallback", "title", title)
		return append([]string(nil), fallbackGovernmentTopics...), false
	}

	t.logger.Debug("no topic signal, using default", "title", title)
	return []string{defaultTopic}, false
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
