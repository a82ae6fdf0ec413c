package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
)

var (
	reDegree      = regexp.MustCompile(`(?i)\b(bachelor(?:'?s)?|master(?:'?s)?|ph\.?d|doctorate|b\.?tech|m\.?tech|b\.?sc?|m\.?sc?|b\.?e|m\.?e|b\.?a|m\.?a|mba|bca|mca|diploma)\b`)
	reGradYear    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	reInstitution = regexp.MustCompile(`(?i)\b(university|institute|college|school|academy)\b`)
)

// Education pattern-matches degree keywords and institution/year tokens in
// the education section. Presence is all the scorer needs; no weight beyond
// that is derived here.
func Education(section string) []resume.EducationEntry {
	lines := strings.Split(section, "\n")
	entries := make([]resume.EducationEntry, 0, 2)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		deg := reDegree.FindString(trimmed)
		if deg == "" {
			continue
		}

		entry := resume.EducationEntry{Degree: deg}
		if y := reGradYear.FindString(trimmed); y != "" {
			entry.Year, _ = strconv.Atoi(y)
		}

		// institution is usually on the same or an adjacent line
		entry.Institution = findInstitution(trimmed)
		if entry.Institution == "" && i+1 < len(lines) {
			entry.Institution = findInstitution(lines[i+1])
		}
		if entry.Institution == "" && i > 0 {
			entry.Institution = findInstitution(lines[i-1])
		}
		if entry.Year == 0 && i+1 < len(lines) {
			if y := reGradYear.FindString(lines[i+1]); y != "" {
				entry.Year, _ = strconv.Atoi(y)
			}
		}

		entries = append(entries, entry)
	}
	return entries
}

func findInstitution(line string) string {
	if !reInstitution.MatchString(line) {
		return ""
	}
	for _, part := range strings.Split(line, ",") {
		if reInstitution.MatchString(part) {
			return strings.TrimSpace(part)
		}
	}
	return strings.TrimSpace(line)
}
