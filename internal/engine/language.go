package engine

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pustakadigital/relevance/internal/domain"
)

// Detection methods recorded for confidence weighing and logs.
const (
	detectDefault    = "default"
	detectShortcut   = "title_shortcut"
	detectClassifier = "classifier"
)

// LanguageClassifier scores text against per-language weighted pattern
// profiles and returns the best supported language code. It is deterministic
// and never fails: inputs that carry too little signal resolve to the
// default catalog language.
type LanguageClassifier struct {
	logger Logger
	norm   *Normalizer
}

// NewLanguageClassifier creates a classifier using the shared normalizer.
func NewLanguageClassifier(logger Logger, norm *Normalizer) *LanguageClassifier {
	return &LanguageClassifier{logger: logger, norm: norm}
}

// DetectLanguage classifies free text. Internal errors are logged and
// swallowed, and the default language is returned in their place.
func (c *LanguageClassifier) DetectLanguage(text string) domain.LanguageCode {
	code, err := c.detect(text)
	if err != nil {
		c.logger.Error("language detection failed, using default",
			"error", err,
			"default", domain.DefaultLanguage)
		return domain.DefaultLanguage
	}
	return code
}

// DetectLanguageFromTitle classifies a catalog title, trying distinctive
// title shapes before the full scorer.
func (c *LanguageClassifier) DetectLanguageFromTitle(title string) domain.LanguageCode {
	code, _, err := c.detectFromTitle(title)
	if err != nil {
		c.logger.Error("title language detection failed, using default",
			"error", err,
			"default", domain.DefaultLanguage)
		return domain.DefaultLanguage
	}
	return code
}

func (c *LanguageClassifier) detectFromTitle(title string) (domain.LanguageCode, string, error) {
	lower := c.norm.Lower(title)
	if lower == "" {
		return domain.DefaultLanguage, detectDefault, nil
	}
	for _, sc := range titleShortcuts {
		if sc.prefix != "" && strings.HasPrefix(lower, sc.prefix) {
			return sc.code, detectShortcut, nil
		}
		if sc.substr != "" && strings.Contains(lower, sc.substr) {
			return sc.code, detectShortcut, nil
		}
	}
	code, err := c.detect(lower)
	return code, detectClassifier, err
}

func (c *LanguageClassifier) detect(text string) (code domain.LanguageCode, err error) {
	defer func() {
		if r := recover(); r != nil {
			code = domain.DefaultLanguage
			err = classificationErrf("language", "pattern evaluation panic: %v", r)
		}
	}()

	lower := c.norm.Lower(text)
	if lower == "" {
		return domain.DefaultLanguage, nil
	}
	tokens := c.norm.AllTokens(lower)

	scores := make(map[domain.LanguageCode]int, len(languageProfiles))
	for _, profile := range languageProfiles {
		scores[profile.code] = scoreProfile(profile, lower, tokens)
	}
	applyContextualBoosts(scores, lower)

	best, bestScore := pickBest(scores)
	threshold := len(tokens) * confidencePerToken
	if bestScore < threshold {
		c.logger.Debug("language score below confidence gate, using default",
			"best", best,
			"score", bestScore,
			"threshold", threshold)
		return domain.DefaultLanguage, nil
	}
	c.logger.Debug("language detected",
		"language", best,
		"score", bestScore,
		"tokens", len(tokens))
	return best, nil
}

// scoreProfile sums pattern occurrence weights, per-token match weights and
// a scaled match-density bonus for one language.
func scoreProfile(p languageProfile, lower string, tokens []string) int {
	score := 0
	for _, wp := range p.patterns {
		score += len(wp.re.FindAllStringIndex(lower, -1)) * wp.weight
	}

	matchedTokens := 0
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= minScoredTokenLength {
			continue
		}
		for _, wp := range p.patterns {
			if wp.re.MatchString(tok) {
				if utf8.RuneCountInString(tok) > longTokenLength {
					score += longTokenWeight
				} else {
					score += shortTokenWeight
				}
				matchedTokens++
				break
			}
		}
	}

	if len(tokens) > 0 {
		density := float64(matchedTokens) / float64(len(tokens))
		score += int(math.Round(density * densityBonusScale))
	}
	return score
}

func applyContextualBoosts(scores map[domain.LanguageCode]int, lower string) {
	if javaneseCulturalPattern.MatchString(lower) {
		scores[domain.LangJavanese] += javaneseCulturalBoost
	}
	if dutchColonialPattern.MatchString(lower) {
		scores[domain.LangDutch] += dutchColonialBoost
	}
	if islamicPattern.MatchString(lower) {
		scores[domain.LangIndonesian] += islamicBoost
		scores[domain.LangMalay] += islamicBoost
	}
	for _, ip := range institutionPatterns {
		if ip.re.MatchString(lower) {
			scores[ip.code] += institutionBoost
		}
	}
}

// pickBest walks profiles in their declared order so equal scores resolve
// to the earlier language.
func pickBest(scores map[domain.LanguageCode]int) (domain.LanguageCode, int) {
	best := domain.DefaultLanguage
	bestScore := -1
	for _, profile := range languageProfiles {
		if s := scores[profile.code]; s > bestScore {
			best = profile.code
			bestScore = s
		}
	}
	return best, bestScore
}
