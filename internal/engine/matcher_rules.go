package engine

// keywordTag binds a metadata tag to the record-text keywords that imply it.
// The fallback extractor uses these when a book arrives without structured
// metadata.
type keywordTag struct {
	Tag      string
	Keywords []string
}

var fallbackThemeRules = []keywordTag{
	{Tag: "sejarah", Keywords: []string{"sejarah", "history", "historis", "masa lalu"}},
	{Tag: "pendidikan", Keywords: []string{"pendidikan", "pengajaran", "sekolah", "pelajaran"}},
	{Tag: "sosial", Keywords: []string{"sosial", "masyarakat", "kemasyarakatan"}},
	{Tag: "budaya", Keywords: []string{"budaya", "kebudayaan", "adat", "tradisi"}},
	{Tag: "agama", Keywords: []string{"agama", "islam", "keagamaan"}},
	{Tag: "politik", Keywords: []string{"politik", "pemerintahan", "kekuasaan"}},
	{Tag: "ekonomi", Keywords: []string{"ekonomi", "perdagangan", "keuangan"}},
}

var fallbackRegionRules = []keywordTag{
	{Tag: "minangkabau", Keywords: []string{"minangkabau", "padang", "sumatera barat"}},
	{Tag: "aceh", Keywords: []string{"aceh"}},
	{Tag: "jawa", Keywords: []string{"jawa", "java", "yogyakarta", "surakarta"}},
	{Tag: "sumatera", Keywords: []string{"sumatera", "sumatra", "medan", "palembang"}},
	{Tag: "sulawesi", Keywords: []string{"sulawesi", "makassar", "bugis"}},
	{Tag: "kalimantan", Keywords: []string{"kalimantan", "borneo", "banjarmasin"}},
	{Tag: "bali", Keywords: []string{"bali", "denpasar"}},
	{Tag: "indonesia", Keywords: []string{"indonesia", "nusantara", "hindia belanda"}},
}

// Defaults assigned by the fallback extractor when the record text carries
// no period or content-type signal. Most of the catalog is colonial-era
// academic writing, which is what these encode.
var fallbackDefaultPeriods = []string{"kolonial"}

const fallbackDefaultContentType = "akademik"

// Confidence buckets keyed by match score.
const (
	confidenceVeryHigh = 0.9
	confidenceHigh     = 0.7
	confidenceMedium   = 0.5
	confidenceLow      = 0.3

	scoreVeryHigh = 80
	scoreHigh     = 60
	scoreMedium   = 40
)

// reasoningTier maps a score floor to the Indonesian label and the phrase
// templates used to compose the human-readable reasoning line. Each tier
// carries several templates so batch output does not read machine-stamped;
// the scorer picks one with its seeded source.
type reasoningTier struct {
	floor     int
	label     string
	templates []string
}

// %[1]s is the tier label, %[2]s the overlap detail.
var reasoningTiers = []reasoningTier{
	{
		floor: scoreVeryHigh,
		label: "sangat tinggi",
		templates: []string{
			"Kecocokan %[1]s: buku ini berbagi %[2]s dengan koleksi.",
			"Buku ini sangat sesuai dengan koleksi karena memiliki %[2]s.",
		},
	},
	{
		floor: scoreHigh,
		label: "tinggi",
		templates: []string{
			"Kecocokan %[1]s berdasarkan %[2]s.",
			"Buku ini cocok dengan koleksi melalui %[2]s.",
		},
	},
	{
		floor: scoreMedium,
		label: "sedang",
		templates: []string{
			"Kecocokan %[1]s: terdapat %[2]s.",
			"Buku ini cukup berkaitan dengan koleksi lewat %[2]s.",
		},
	},
	{
		floor: 0,
		label: "rendah",
		templates: []string{
			"Kecocokan %[1]s: hanya sedikit kesamaan, yaitu %[2]s.",
			"Keterkaitan buku ini dengan koleksi terbatas pada %[2]s.",
		},
	},
}

const reasoningNoOverlapDetail = "kesamaan umum dalam katalog"

func confidenceForScore(score int) float64 {
	switch {
	case score >= scoreVeryHigh:
		return confidenceVeryHigh
	case score >= scoreHigh:
		return confidenceHigh
	case score >= scoreMedium:
		return confidenceMedium
	default:
		return confidenceLow
	}
}

func tierForScore(score int) reasoningTier {
	for _, tier := range reasoningTiers {
		if score >= tier.floor {
			return tier
		}
	}
	return reasoningTiers[len(reasoningTiers)-1]
}
