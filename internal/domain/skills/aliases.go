package skills

// canonicalAliases maps every canonical skill id to the cleaned surface forms
// that should collapse into it. The lookup table is derived once at init and
// never mutated afterwards.
var canonicalAliases = map[string][]string{
	"react":       {"reactjs", "react js"},
	"nodejs":      {"node", "node js"},
	"javascript":  {"js", "ecmascript"},
	"typescript":  {"ts"},
	"mongodb":     {"mongo"},
	"express":     {"expressjs", "express js"},
	"tailwindcss": {"tailwind", "tailwind css"},
	"css":         {"css3"},
	"html":        {"html5"},
	"nextjs":      {"next js"},
	"vite":        {},
	"redux":       {},
	"solana":      {},
	"web3":        {"web 3"},
	"blockchain":  {},
	"postgresql":  {"postgres"},
	"golang":      {"go"},
	"python":      {},
	"java":        {},
	"uiux":        {"ui ux", "ui-ux"},
	"api":         {"rest api", "restapi"},
	"web3js":      {"web3 js"},
	"groq":        {},
	"nlp":         {},
	"ai":          {},
}

var aliasToCanonical map[string]string

func init() {
	aliasToCanonical = make(map[string]string, len(canonicalAliases)*2)
	for canonical, variants := range canonicalAliases {
		aliasToCanonical[canonical] = canonical
		for _, v := range variants {
			aliasToCanonical[v] = canonical
		}
	}
}

// AllowedExtractionTerms is the vocabulary accepted from NLP noun extraction.
// Candidate terms outside this set are heuristic noise, not skills.
var AllowedExtractionTerms = map[string]bool{
	"react":       true,
	"nodejs":      true,
	"javascript":  true,
	"typescript":  true,
	"mongodb":     true,
	"solana":      true,
	"express":     true,
	"tailwindcss": true,
	"css":         true,
	"html":        true,
	"groq":        true,
	"nlp":         true,
	"ai":          true,
	"web3":        true,
	"redux":       true,
	"nextjs":      true,
	"vite":        true,
}
