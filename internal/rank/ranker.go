package rank

import (
	"sort"
	"strings"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
)

// Order sorts a copy of the results: descending match score, ties broken by
// descending experience score, then by student id. The secondary keys give a
// total order, so ranking the same pool twice yields the same order, tie
// order included. The input slice is never mutated.
func Order(results []match.Result) []match.Result {
	out := make([]match.Result, len(results))
	copy(out, results)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		if out[i].ExperienceScore != out[j].ExperienceScore {
			return out[i].ExperienceScore > out[j].ExperienceScore
		}
		return strings.Compare(out[i].StudentID.String(), out[j].StudentID.String()) < 0
	})
	return out
}

// TopN returns the highest-ranked n results as a view over the ordered
// slice. n larger than the pool returns everything; n <= 0 returns an empty
// slice.
func TopN(results []match.Result, n int) []match.Result {
	ordered := Order(results)
	if n <= 0 {
		return ordered[:0]
	}
	if n > len(ordered) {
		n = len(ordered)
	}
	return ordered[:n]
}

// Ascending re-sorts ordered results worst-first, for the dashboard's
// sort-order toggle.
func Ascending(results []match.Result) []match.Result {
	ordered := Order(results)
	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	return ordered
}
