package assistant

import (
	"regexp"
	"strings"
)

// Model replies often run numbered lists together on one line
// ("... steps: 1. do this 2. do that"). FormatNumberedLists puts each item on
// its own line without touching anything else; the reply text itself is
// passed through unparsed and unvalidated.
var inlineListItemRe = regexp.MustCompile(`([^\n])\s+(\d+)\.\s`)

func FormatNumberedLists(text string) string {
	if !strings.Contains(text, ". ") {
		return text
	}
	return inlineListItemRe.ReplaceAllString(text, "$1\n$2. ")
}
