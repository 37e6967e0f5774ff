package engine

import (
	"regexp"

	"github.com/pustakadigital/relevance/internal/domain"
)

// Pattern and token weights for the weighted-regex language scorer.
const (
	anchoredPatternWeight = 3 // word-boundary vocabulary sets
	loosePatternWeight    = 2 // morphological affix shapes

	longTokenWeight      = 4 // matched token longer than longTokenLength
	shortTokenWeight     = 3
	longTokenLength      = 5
	minScoredTokenLength = 2 // tokens this short carry no signal

	densityBonusScale  = 20 // matched-token density scaled into the score
	confidencePerToken = 2  // winner must clear tokenCount * this
)

// Contextual boost values applied after per-language scoring.
const (
	javaneseCulturalBoost = 25
	dutchColonialBoost    = 22
	islamicBoost          = 12
	institutionBoost      = 5
)

type weightedPattern struct {
	re     *regexp.Regexp
	weight int
}

func anchored(expr string) weightedPattern {
	return weightedPattern{
		re:     regexp.MustCompile(`\b(?:` + expr + `)\b`),
		weight: anchoredPatternWeight,
	}
}

func loose(expr string) weightedPattern {
	return weightedPattern{
		re:     regexp.MustCompile(expr),
		weight: loosePatternWeight,
	}
}

type languageProfile struct {
	code     domain.LanguageCode
	patterns []weightedPattern
}

// languageProfiles is scored in order; ties go to the earlier entry, which
// keeps Indonesian as the bias for ambiguous Malay-family text.
var languageProfiles = []languageProfile{
	{
		code: domain.LangIndonesian,
		patterns: []weightedPattern{
			// academic vocabulary
			anchored(`penelitian|pengantar|kajian|analisis|pembahasan|tinjauan|metodologi|ilmiah|makalah`),
			// institutional vocabulary
			anchored(`universitas|lembaga|kementerian|pemerintah|departemen|yayasan|penerbit|perpustakaan`),
			// geography
			anchored(`indonesia|nusantara|sumatra|sumatera|sulawesi|kalimantan|jakarta|bandung|surabaya`),
			// cultural vocabulary
			anchored(`kebudayaan|masyarakat|adat|istiadat|kesenian|keagamaan|perjuangan|kemerdekaan`),
			// grammatical particles
			anchored(`yang|dan|dari|untuk|dengan|pada|dalam|adalah|tidak|akan|tentang|serta`),
			// productive affix shapes
			loose(`\b(?:me|di|ter|pe)[a-z]{3,}kan\b`),
			loose(`\bke[a-z]{3,}an\b`),
		},
	},
	{
		code: domain.LangMalay,
		patterns: []weightedPattern{
			anchored(`penyelidikan|pengajian|analisa|kaedah|huraian|rencana`),
			anchored(`universiti|kerajaan|jabatan|majlis|dewan|persekutuan`),
			anchored(`malaysia|melayu|johor|kelantan|selangor|terengganu|sabah|sarawak|brunei`),
			anchored(`warisan|hikayat|syair|pantun|adat`),
			anchored(`yang|dan|dengan|untuk|kepada|daripada|ialah|boleh|tidak|mengenai`),
			loose(`\bmem[a-z]{3,}kan\b`),
		},
	},
	{
		code: domain.LangEnglish,
		patterns: []weightedPattern{
			anchored(`history|study|studies|analysis|introduction|research|survey|journal|review`),
			anchored(`university|institute|press|society|department|college|library`),
			anchored(`indonesian|javanese|sumatran|dutch|asia|asian|indies|archipelago`),
			anchored(`culture|cultural|religion|religious|tradition|heritage|colonial`),
			anchored(`the|of|and|in|on|for|from|with|by|an`),
			loose(`\b[a-z]{4,}(?:tion|ment|ness|ship)s?\b`),
		},
	},
	{
		code: domain.LangDutch,
		patterns: []weightedPattern{
			anchored(`geschiedenis|onderzoek|verhandeling|bijdrage|tijdschrift|wetenschap|beschrijving`),
			anchored(`universiteit|genootschap|instituut|uitgeverij|maatschappij|koninklijk`),
			anchored(`nederland|nederlandsch|indie|oost-indie|batavia|vorstenlanden`),
			anchored(`cultuur|godsdienst|volkenkunde|taalkunde|letterkunde|landbouw`),
			anchored(`het|de|een|van|en|voor|over|met|tot|der|den|zijn`),
			loose(`\b[a-z]{4,}(?:heid|lijk|isch)e?\b`),
		},
	},
	{
		code: domain.LangJavanese,
		patterns: []weightedPattern{
			anchored(`serat|babad|kidung|suluk|primbon|wulang|piwulang`),
			anchored(`kraton|keraton|kasunanan|kasultanan|mangkunegaran|pakualaman`),
			anchored(`jawi|ngayogyakarta|surakarta|mataram|majapahit`),
			anchored(`tembang|wayang|gamelan|macapat|pedhalangan|kejawen|gendhing`),
			anchored(`ing|lan|kang|iku|iki|ora|saka|marang|ingkang|punika|dados`),
		},
	},
}

// Contextual boost triggers. Word-anchored so English "islamic" does not
// feed the Indonesian Islamic-vocabulary boost and Dutch "universiteit"
// does not feed the Malay institutional boost.
var (
	javaneseCulturalPattern = regexp.MustCompile(`\b(?:serat|babad|kraton|keraton|tembang|wayang|gamelan|macapat)\b`)
	dutchColonialPattern    = regexp.MustCompile(`\b(?:indisch|indische|koloniaal|koloniale|nederlandsch|nederlandsche|voc|gouvernement)\b`)
	islamicPattern          = regexp.MustCompile(`\b(?:islam|quran|qur'an|alquran|hadis|hadits|fiqih|fikih|tauhid|dakwah|syariah|pesantren)\b`)

	institutionPatterns = []struct {
		code domain.LanguageCode
		re   *regexp.Regexp
	}{
		{domain.LangIndonesian, regexp.MustCompile(`\b(?:universitas|institut teknologi|balai pustaka)\b`)},
		{domain.LangMalay, regexp.MustCompile(`\b(?:universiti|dewan bahasa)\b`)},
		{domain.LangEnglish, regexp.MustCompile(`\b(?:university|institute|press)\b`)},
		{domain.LangDutch, regexp.MustCompile(`\b(?:universiteit|genootschap|uitgeverij)\b`)},
	}
)

// titleShortcut resolves a language straight from a distinctive title shape
// before the full scorer runs.
type titleShortcut struct {
	prefix string
	substr string
	code   domain.LanguageCode
}

var titleShortcuts = []titleShortcut{
	{prefix: "history of ", code: domain.LangEnglish},
	{prefix: "the history of ", code: domain.LangEnglish},
	{prefix: "an introduction to ", code: domain.LangEnglish},
	{substr: "serat ", code: domain.LangJavanese},
	{substr: "babad ", code: domain.LangJavanese},
	{prefix: "hikayat ", code: domain.LangMalay},
	{substr: "geschiedenis", code: domain.LangDutch},
	{substr: "nederlandsch", code: domain.LangDutch},
}
