package skills

import (
	"strings"
	"unicode"
)

// Normalize maps a free-text skill token to its canonical id. Surface
// variants (casing, punctuation, ".js"/"js" suffixes, spelled-apart names
// like "node js") collapse to one identifier. Unknown tokens come back as
// their own cleaned form, so two unknown-but-identical skills still match.
// Empty or garbage-only input yields "".
func Normalize(raw string) string {
	cleaned := clean(raw)
	if cleaned == "" {
		return ""
	}

	if canonical, ok := aliasToCanonical[cleaned]; ok {
		return canonical
	}

	for _, v := range variants(cleaned) {
		if canonical, ok := aliasToCanonical[v]; ok {
			return canonical
		}
	}

	return cleaned
}

// NormalizeSet normalizes every token, drops empties, and deduplicates.
// The result is a set; ordering carries no meaning.
func NormalizeSet(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		n := Normalize(t)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// clean lowercases, strips everything outside word characters, whitespace and
// hyphen, and collapses whitespace runs to single spaces.
func clean(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// variants generates the deterministic rewrites tried against the alias table
// when the cleaned token itself is unknown. Order matters and must stay
// stable: same input, same canonical id, every time.
func variants(cleaned string) []string {
	out := make([]string, 0, 8)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || s == cleaned {
			return
		}
		for _, existing := range out {
			if existing == s {
				return
			}
		}
		out = append(out, s)
	}

	noSpace := strings.ReplaceAll(cleaned, " ", "")
	noHyphen := strings.ReplaceAll(cleaned, "-", "")
	flat := strings.ReplaceAll(noSpace, "-", "")

	add(noSpace)
	add(noHyphen)
	add(flat)

	// Trailing "js" suffix forms: "react js", "reactjs". The dot form
	// ("react.js") is already reduced by cleaning.
	add(strings.TrimSuffix(cleaned, " js"))
	if len(flat) > 2 {
		add(strings.TrimSuffix(flat, "js"))
	}

	return out
}
