package text

import (
	"errors"
	"strings"
	"unicode"
)

// ErrExtractionEmpty is returned when the supplied text is too short to
// score. Callers must treat this as "cannot score", never as a zero score.
var ErrExtractionEmpty = errors.New("extracted text empty or below minimum length")

// MinInputLength is the smallest raw input (in runes, after trimming) that
// still counts as scoreable text.
const MinInputLength = 20

// Normalize lower-cases the input, reduces punctuation to word boundaries
// and collapses whitespace. Stop-words are retained; removing them is the
// extractor's job so the normalizer stays reusable for resumes and job text.
// Normalizing already-normalized text is a fixed point.
func Normalize(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if len([]rune(trimmed)) < MinInputLength {
		return "", ErrExtractionEmpty
	}
	out := Clean(trimmed)
	if out == "" {
		return "", ErrExtractionEmpty
	}
	return out, nil
}

// Clean applies the normalization rules without the minimum-length guard.
// Use it for individual terms (skill names, titles); use Normalize for
// whole documents.
func Clean(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))

	b := strings.Builder{}
	b.Grow(len(lower))
	lastWasSpace := false

	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			lastWasSpace = false
		case r == '+' || r == '#':
			// keep c++, c#, f# distinguishable from c
			b.WriteRune(r)
			lastWasSpace = false
		case r == '.' && !lastWasSpace && b.Len() > 0:
			// keep dotted tech terms (node.js, asp.net) as single tokens
			b.WriteByte('.')
			lastWasSpace = false
		default:
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		// sentence-final dots are noise; interior dots (node.js) are not
		f = strings.Trim(f, ".")
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return strings.Join(tokens, " ")
}

// Tokens splits normalized text into its word tokens.
func Tokens(normalized string) []string {
	return strings.Fields(normalized)
}

// NGrams returns all n-grams of the given sizes over the token stream,
// joined by single spaces, in order of appearance.
func NGrams(tokens []string, minN, maxN int) []string {
	if minN < 1 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}
	out := make([]string, 0, len(tokens)*(maxN-minN+1))
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
