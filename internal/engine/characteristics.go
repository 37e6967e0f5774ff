package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pustakadigital/relevance/internal/domain"
)

// Era boundaries (exclusive upper bounds) for Indonesian history periods.
const (
	eraColonialStart     = 1602
	eraIndependenceStart = 1945
	eraNewOrderStart     = 1966
	eraReformStart       = 1998
)

// Confidence contributions of the composer. Each resolved signal adds its
// weight on top of the base.
const (
	composerBaseConfidence     = 0.25
	composerYearConfidence     = 0.25
	composerTopicConfidence    = 0.25
	composerLanguageConfidence = 0.25
)

// yearPattern accepts plausible publication years from 1400 through the
// 2000s. Catalog year fields are messy ("[1952]", "ca. 1880", "19--").
var yearPattern = regexp.MustCompile(`(1[4-9]\d{2}|20\d{2})`)

var yearNoiseReplacer = strings.NewReplacer("[", " ", "]", " ", "(", " ", ")", " ")

// Composer derives the characteristics bundle (year, era, language, topics,
// confidence) of a catalog record from its raw fields.
type Composer struct {
	logger   Logger
	topics   *TopicExtractor
	language *LanguageClassifier
}

// NewComposer wires the composer to the shared extractor and classifier.
func NewComposer(logger Logger, topics *TopicExtractor, language *LanguageClassifier) *Composer {
	return &Composer{logger: logger, topics: topics, language: language}
}

// Compose derives characteristics for one record. It never fails: unparsable
// fields resolve to the documented defaults and lower the confidence.
func (c *Composer) Compose(rec domain.CatalogRecord) domain.Characteristics {
	year := ParseYear(rec.YearRaw)
	era := EraForYear(year)

	lang, method, err := c.language.detectFromTitle(rec.Title)
	if err != nil {
		c.logger.Warn("language detection failed while composing, using default",
			"record_id", rec.ID,
			"error", err)
		lang = domain.DefaultLanguage
		method = detectDefault
	}

	topics, fromDictionary := c.topics.extract(rec.Title)

	confidence := composerBaseConfidence
	if year != nil {
		confidence += composerYearConfidence
	}
	if fromDictionary {
		confidence += composerTopicConfidence
	}
	if method == detectShortcut {
		confidence += composerLanguageConfidence
	}

	return domain.Characteristics{
		Year:       year,
		Era:        era,
		Language:   lang,
		Topics:     topics,
		Confidence: confidence,
	}
}

// ParseYear extracts the first plausible publication year from a raw catalog
// year field, stripping bracket noise first. Returns nil when no year can
// be read.
func ParseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	cleaned := yearNoiseReplacer.Replace(raw)
	match := yearPattern.FindString(cleaned)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}

// EraForYear buckets a year into its historical era. A nil year is unknown.
func EraForYear(year *int) domain.Era {
	if year == nil {
		return domain.EraUnknown
	}
	switch {
	case *year < eraColonialStart:
		return domain.EraPreColonial
	case *year < eraIndependenceStart:
		return domain.EraColonial
	case *year < eraNewOrderStart:
		return domain.EraEarlyIndependence
	case *year < eraReformStart:
		return domain.EraNewOrder
	default:
		return domain.EraReform
	}
}
