package engine

// topicRule binds a catalog topic category to the keywords that signal it.
// Keywords are matched as substrings of the lowercased title, so they also
// hit inside compounds ("kesejarahan" matches "sejarah").
type topicRule struct {
	Category string
	Keywords []string
}

// topicRules is evaluated in order: when more than maxTopics categories
// match, the earlier entries win. The order reflects how specific a signal
// usually is in Indonesian library catalogs.
var topicRules = []topicRule{
	{Category: "sejarah", Keywords: []string{"sejarah", "history", "geschiedenis", "historis", "tawarikh", "babad", "kronik"}},
	{Category: "hukum", Keywords: []string{"hukum", "law", "recht", "undang-undang", "peraturan", "perundang", "yuridis"}},
	{Category: "ekonomi", Keywords: []string{"ekonomi", "economy", "economic", "economie", "perdagangan", "keuangan", "perbankan"}},
	{Category: "politik", Keywords: []string{"politik", "politic", "politiek", "demokrasi", "kekuasaan", "parlemen"}},
	{Category: "pendidikan", Keywords: []string{"pendidikan", "education", "onderwijs", "pengajaran", "sekolah", "kurikulum", "pembelajaran"}},
	{Category: "agama", Keywords: []string{"agama", "religion", "godsdienst", "islam", "kristen", "katolik", "hindu", "buddha", "teologi"}},
	{Category: "budaya", Keywords: []string{"budaya", "kebudayaan", "culture", "cultuur", "tradisi", "kesenian", "folklor"}},
	// "adat" is deliberately absent above: it co-occurs with legal titles
	// (hukum adat) far more often than with cultural ones.
	{Category: "sosial", Keywords: []string{"sosial", "social", "masyarakat", "maatschappij", "kemasyarakatan", "antropologi", "sosiologi"}},
	{Category: "bahasa", Keywords: []string{"bahasa", "language", "linguistik", "taalkunde", "sastra", "kesusastraan", "gramatika"}},
	{Category: "geografi", Keywords: []string{"geografi", "geography", "aardrijkskunde", "topografi", "kartografi", "atlas"}},
	{Category: "seni", Keywords: []string{"seni", "kunst", "musik", "tari", "lukis", "teater", "arsitektur"}},
	{Category: "sains", Keywords: []string{"sains", "science", "wetenschap", "fisika", "kimia", "biologi", "matematika", "astronomi"}},
	{Category: "teknologi", Keywords: []string{"teknologi", "technology", "techniek", "rekayasa", "industri", "permesinan"}},
	{Category: "pertanian", Keywords: []string{"pertanian", "agriculture", "landbouw", "perkebunan", "pangan", "irigasi", "agraria"}},
	{Category: "kesehatan", Keywords: []string{"kesehatan", "health", "kedokteran", "geneeskunde", "medis", "farmasi", "keperawatan"}},
	{Category: "filsafat", Keywords: []string{"filsafat", "philosophy", "filosofie", "pemikiran", "etika", "logika", "metafisika"}},
	{Category: "literatur", Keywords: []string{"literatur", "literature", "novel", "puisi", "cerita", "roman", "antologi", "dongeng"}},
}

// Contextual fallback hints for titles that match no topic keyword at all.
// A recognizable place name suggests regional culture and history writing,
// a government term suggests politics.
var (
	fallbackGeographicNames = []string{
		"indonesia", "nusantara", "jawa", "java", "sumatra", "sumatera",
		"bali", "sulawesi", "kalimantan", "borneo", "madura", "lombok",
		"batavia", "jakarta", "yogyakarta", "surakarta", "bandung",
		"surabaya", "aceh", "minangkabau", "padang", "makassar", "maluku",
		"papua",
	}
	fallbackGovernmentTerms = []string{
		"pemerintah", "kementerian", "departemen", "kabinet", "birokrasi",
		"dinas", "gubernemen", "regering",
	}
)

var (
	fallbackGeographicTopics = []string{"budaya", "sejarah"}
	fallbackGovernmentTopics = []string{"politik"}
)

const defaultTopic = "literatur"
