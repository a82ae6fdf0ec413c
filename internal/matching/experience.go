package matching

import (
	"math"
	"strings"
	"time"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/job"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

// ExperienceScore weighs each experience entry by duration, recency and role
// relevance, then maps the weighted total onto [0,100] with saturation at
// cfg.FullScoreYears. Totals that fall well short of the posting's seniority
// floor are discounted. Entries with unparseable dates contribute zero
// weight but stay in the entry list for the checks that only need their
// presence.
func ExperienceScore(entries []resume.ExperienceEntry, posting job.Posting, cfg Config, now time.Time) float64 {
	var weighted float64
	for _, e := range entries {
		if e.Duration == nil {
			continue
		}
		weighted += e.Years() * recencyFactor(e, cfg, now) * roleRelevance(e.Role, posting)
	}
	weighted *= seniorityFit(weighted, posting.Seniority)

	score := 100 * weighted / cfg.FullScoreYears
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// recencyFactor halves a role's weight every cfg.RecencyHalfLifeYears since
// the role ended; a current role is not discounted at all.
func recencyFactor(e resume.ExperienceEntry, cfg Config, now time.Time) float64 {
	if e.Current || e.End == nil {
		return 1
	}
	sinceEnd := now.Sub(*e.End).Hours() / (24 * 365.25)
	if sinceEnd <= 0 {
		return 1
	}
	return math.Pow(0.5, sinceEnd/cfg.RecencyHalfLifeYears)
}

// seniorityFit discounts totals under half the experience floor the
// posting's seniority implies. Unknown and intern levels carry no floor.
func seniorityFit(weightedYears float64, s job.Seniority) float64 {
	floor := s.MinYears()
	if floor <= 0 || weightedYears >= floor/2 {
		return 1
	}
	return 0.75
}

// roleRelevance compares a role title to the posting's title and seniority
// heuristics. Titles sharing a meaningful token count in full; role-shaped
// titles that do not overlap count reduced; everything else counts half.
func roleRelevance(role string, posting job.Posting) float64 {
	roleTokens := meaningfulTokens(role)
	postingTokens := meaningfulTokens(posting.Title)
	if len(roleTokens) == 0 || len(postingTokens) == 0 {
		return 0.6
	}

	for t := range roleTokens {
		if _, ok := postingTokens[t]; ok {
			return 1
		}
	}
	return 0.6
}

var genericTitleWords = map[string]struct{}{
	"senior": {}, "junior": {}, "sr": {}, "jr": {}, "intern": {}, "staff": {},
	"principal": {}, "lead": {}, "i": {}, "ii": {}, "iii": {}, "the": {},
	"of": {}, "and": {}, "at": {},
}

func meaningfulTokens(title string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range strings.Fields(text.Clean(title)) {
		if _, generic := genericTitleWords[t]; generic {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}
