package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sriraghavi22/career-catalyst-project/internal/taxonomy"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

// acronym-looking tokens in the raw text (before lower-casing) are retained
// as unclassified skills so novel terms are not silently dropped.
var reAcronym = regexp.MustCompile(`\b[A-Z][A-Z0-9+#.]{1,9}\b`)

// Skills matches normalized tokens and n-grams against the taxonomy and
// returns the canonical skill set, sorted. Raw text is consulted only for
// acronym-shaped tokens the taxonomy does not know.
func Skills(raw, normalized string, tax *taxonomy.Taxonomy) (skills []string, unclassified []string) {
	tokens := text.Tokens(normalized)
	maxN := 1
	if tax != nil {
		maxN = tax.MaxPhraseTokens()
	}

	seen := make(map[string]struct{})
	for _, gram := range text.NGrams(tokens, 1, maxN) {
		canon, ok := tax.Canonical(gram)
		if !ok {
			continue
		}
		seen[canon] = struct{}{}
	}

	skills = make([]string, 0, len(seen))
	for s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	unclassified = unclassifiedAcronyms(raw, tax, seen)
	return skills, unclassified
}

func unclassifiedAcronyms(raw string, tax *taxonomy.Taxonomy, matched map[string]struct{}) []string {
	seen := make(map[string]struct{})
	for _, m := range reAcronym.FindAllString(raw, -1) {
		lower := strings.ToLower(strings.Trim(m, "."))
		if lower == "" || isStopAcronym(lower) {
			continue
		}
		if canon, ok := tax.Canonical(lower); ok {
			// already classified under its canonical name
			_ = canon
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// common all-caps resume furniture that is not a skill
var stopAcronyms = map[string]struct{}{
	"cv": {}, "gpa": {}, "usa": {}, "uk": {}, "inc": {}, "llc": {},
	"ceo": {}, "cto": {}, "hr": {}, "id": {}, "na": {},
}

func isStopAcronym(lower string) bool {
	_, ok := stopAcronyms[lower]
	return ok
}
