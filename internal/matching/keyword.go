package matching

import (
	"sort"

	"github.com/sriraghavi22/career-catalyst-project/internal/taxonomy"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

// KeywordScore computes the taxonomy-aware overlap between the resume's
// skill set and the job's requirement set:
//
//	100 × |resume ∩ job| / max(1, |job|)
//
// An empty requirement set scores exactly 100: postings with unstructured
// descriptions have nothing to fail against, and penalizing them would skew
// every ranking they appear in.
func KeywordScore(resumeSkills, jobSkills []string, tax *taxonomy.Taxonomy) (score float64, matched, missing []string) {
	jobSet := canonicalSet(jobSkills, tax)
	if len(jobSet) == 0 {
		return 100, []string{}, []string{}
	}

	resumeSet := canonicalSet(resumeSkills, tax)

	matched = make([]string, 0, len(jobSet))
	missing = make([]string, 0, len(jobSet))
	for skill := range jobSet {
		if _, ok := resumeSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score = 100 * float64(len(matched)) / float64(len(jobSet))
	return score, matched, missing
}

func canonicalSet(skills []string, tax *taxonomy.Taxonomy) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		canon, ok := tax.Canonical(s)
		if !ok {
			canon = text.Clean(s)
		}
		if canon == "" {
			continue
		}
		set[canon] = struct{}{}
	}
	return set
}
