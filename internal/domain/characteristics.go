package domain

// LanguageCode identifies one of the languages the classifier can detect.
type LanguageCode string

// Supported language codes. LangIndonesian is the universal default: every
// fallback path in the engine resolves to it.
const (
	LangIndonesian LanguageCode = "id"
	LangMalay      LanguageCode = "ms"
	LangEnglish    LanguageCode = "en"
	LangDutch      LanguageCode = "nl"
	LangJavanese   LanguageCode = "jv"
)

// DefaultLanguage is returned whenever detection cannot commit to a language.
const DefaultLanguage = LangIndonesian

// Era buckets a publication year into a period of Indonesian history.
type Era string

// Era values.
const (
	EraPreColonial       Era = "pre-colonial"
	EraColonial          Era = "colonial"
	EraEarlyIndependence Era = "early-independence"
	EraNewOrder          Era = "new-order"
	EraReform            Era = "reform"
	EraUnknown           Era = "unknown"
)

// Characteristics is the derived bundle of year/era/language/topics for a
// single catalog record, consumed by description-template selection.
type Characteristics struct {
	Year       *int         `json:"year"`
	Era        Era          `json:"era"`
	Language   LanguageCode `json:"language"`
	Topics     []string     `json:"topics"`
	Confidence float64      `json:"confidence"`
}
