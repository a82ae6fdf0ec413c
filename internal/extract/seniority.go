package extract

import (
	"regexp"
	"strings"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/job"
)

var reYearsRequired = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*(?:-\s*\d{1,2}\s*)?years?\b`)

// Seniority derives the posting's target level from title keywords first,
// then from a years-of-experience mention in the description.
func Seniority(title, description string) job.Seniority {
	t := strings.ToLower(title)

	switch {
	case strings.Contains(t, "intern") || strings.Contains(t, "trainee"):
		return job.SeniorityIntern
	case strings.Contains(t, "junior") || strings.Contains(t, "entry level") || strings.Contains(t, "entry-level") || strings.Contains(t, "graduate"):
		return job.SeniorityJunior
	case strings.Contains(t, "principal") || strings.Contains(t, "staff") || strings.Contains(t, "lead") || strings.Contains(t, "head of") || strings.Contains(t, "director"):
		return job.SeniorityLead
	case strings.Contains(t, "senior") || strings.Contains(t, "sr.") || strings.Contains(t, "sr "):
		return job.SenioritySenior
	}

	if m := reYearsRequired.FindStringSubmatch(description); m != nil {
		switch years := atoiSafe(m[1]); {
		case years >= 8:
			return job.SeniorityLead
		case years >= 5:
			return job.SenioritySenior
		case years >= 3:
			return job.SeniorityMid
		case years >= 1:
			return job.SeniorityJunior
		}
	}
	return job.SeniorityUnknown
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
