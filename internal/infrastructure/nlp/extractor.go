package nlp

import (
	"context"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// TermExtractor pulls candidate skill terms out of free text. The matching
// core never depends on this; it is a heuristic for profile enrichment only.
type TermExtractor interface {
	ExtractCandidateTerms(ctx context.Context, text string) ([]string, error)
}

// ProseExtractor tags the text and returns its nouns, lowercased and
// deduplicated. Filtering against the skill vocabulary is the caller's job.
type ProseExtractor struct{}

func NewProseExtractor() *ProseExtractor {
	return &ProseExtractor{}
}

func (e *ProseExtractor) ExtractCandidateTerms(_ context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}, nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	terms := make([]string, 0)
	for _, tok := range doc.Tokens() {
		if !isNounTag(tok.Tag) {
			continue
		}
		term := strings.ToLower(strings.TrimSpace(tok.Text))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}

	return terms, nil
}

func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	default:
		return false
	}
}
