package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

// Taxonomy maps canonical skill names to their synonym strings. It is built
// once at process start and read-only afterwards, so it is safe to share
// across concurrent scoring calls.
type Taxonomy struct {
	synonyms  map[string][]string
	canonical map[string]string
	maxTokens int
}

// New builds a taxonomy from a canonical-name -> synonyms mapping. Lookup is
// case-insensitive; every canonical name is also its own synonym.
func New(entries map[string][]string) *Taxonomy {
	t := &Taxonomy{
		synonyms:  make(map[string][]string, len(entries)),
		canonical: make(map[string]string, len(entries)*2),
		maxTokens: 1,
	}
	for name, syns := range entries {
		canon := normalizeTerm(name)
		if canon == "" {
			continue
		}
		kept := make([]string, 0, len(syns))
		t.index(canon, canon)
		for _, s := range syns {
			norm := normalizeTerm(s)
			if norm == "" {
				continue
			}
			kept = append(kept, norm)
			t.index(norm, canon)
		}
		sort.Strings(kept)
		t.synonyms[canon] = kept
	}
	return t
}

func (t *Taxonomy) index(term, canon string) {
	if _, exists := t.canonical[term]; !exists {
		t.canonical[term] = canon
	}
	if n := len(strings.Fields(term)); n > t.maxTokens {
		t.maxTokens = n
	}
}

// Canonical resolves a term (skill name or synonym, any case) to its
// canonical skill name.
func (t *Taxonomy) Canonical(term string) (string, bool) {
	if t == nil {
		return "", false
	}
	c, ok := t.canonical[normalizeTerm(term)]
	return c, ok
}

// Synonyms returns the synonym list registered for a canonical name.
func (t *Taxonomy) Synonyms(canonical string) []string {
	if t == nil {
		return nil
	}
	syns, ok := t.synonyms[normalizeTerm(canonical)]
	if !ok {
		return nil
	}
	out := make([]string, len(syns))
	copy(out, syns)
	return out
}

// Skills returns every canonical skill name in sorted order.
func (t *Taxonomy) Skills() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.synonyms))
	for name := range t.synonyms {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MaxPhraseTokens reports the longest registered term in tokens; extraction
// uses it to bound n-gram size.
func (t *Taxonomy) MaxPhraseTokens() int {
	if t == nil || t.maxTokens < 1 {
		return 1
	}
	return t.maxTokens
}

// Len reports the number of canonical skills.
func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.synonyms)
}

// LoadFile reads a canonical-name -> synonyms JSON object, the format the
// platform's skill-config source exports.
func LoadFile(path string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	var entries map[string][]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("taxonomy file %s has no entries", path)
	}
	return New(entries), nil
}

func normalizeTerm(s string) string {
	return text.Clean(s)
}
