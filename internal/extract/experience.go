package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
)

var (
	reMonthYearRange = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+(\d{4})\s*(?:-|–|—|to|until)\s*(?:(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+(\d{4})|(present|current|now|ongoing))`)
	reYearRange      = regexp.MustCompile(`(?i)\b(\d{4})\s*(?:-|–|—|to|until)\s*((\d{4})|present|current|now|ongoing)\b`)
	reDateHint       = regexp.MustCompile(`(?i)\b(19|20)\d{2}\b|\bpresent\b|\bcurrent\b`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Experience pattern-matches date ranges and adjacent role text in the work
// history section into experience entries. Entries whose dates cannot be
// parsed are kept with a nil duration and a warning instead of being
// discarded. The reference time makes "present" ranges, and therefore the
// whole extraction, deterministic for a fixed input.
func Experience(section string, now time.Time) []resume.ExperienceEntry {
	lines := strings.Split(section, "\n")
	entries := make([]resume.ExperienceEntry, 0, 4)

	var prevLine string
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		entry, matched := parseEntryLine(line, prevLine, now)
		if matched {
			if entry.Description == "" && i+1 < len(lines) {
				entry.Description = strings.TrimSpace(lines[i+1])
			}
			entries = append(entries, entry)
		}
		prevLine = line
	}
	return entries
}

func parseEntryLine(line, prevLine string, now time.Time) (resume.ExperienceEntry, bool) {
	if m := reMonthYearRange.FindStringSubmatchIndex(line); m != nil {
		sub := reMonthYearRange.FindStringSubmatch(line)
		start := monthYear(sub[1], sub[2])
		var end *time.Time
		current := false
		if sub[5] != "" {
			current = true
		} else {
			e := monthYear(sub[3], sub[4])
			// take the last day of the end month
			e = e.AddDate(0, 1, 0).Add(-24 * time.Hour)
			end = &e
		}
		return buildEntry(roleText(line[:m[0]], prevLine), start, end, current, now), true
	}

	if m := reYearRange.FindStringSubmatchIndex(line); m != nil {
		sub := reYearRange.FindStringSubmatch(line)
		startYear, _ := strconv.Atoi(sub[1])
		start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		var end *time.Time
		current := false
		if sub[3] == "" {
			current = true
		} else {
			endYear, _ := strconv.Atoi(sub[3])
			e := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)
			end = &e
		}
		return buildEntry(roleText(line[:m[0]], prevLine), start, end, current, now), true
	}

	// date-ish text that did not parse as a range: keep the entry, flag it
	if reDateHint.MatchString(line) && looksLikeRole(prevLine) {
		return resume.ExperienceEntry{
			Role:        strings.TrimSpace(prevLine),
			DateWarning: "unparseable date range: " + line,
		}, true
	}

	return resume.ExperienceEntry{}, false
}

func buildEntry(role string, start time.Time, end *time.Time, current bool, now time.Time) resume.ExperienceEntry {
	entry := resume.ExperienceEntry{
		Role:    role,
		Start:   &start,
		End:     end,
		Current: current,
	}

	effectiveEnd := now
	if !current && end != nil {
		effectiveEnd = *end
	}
	if effectiveEnd.Before(start) {
		// start after end violates the entry invariant; zero weight, keep entry
		entry.Start = nil
		entry.End = nil
		entry.DateWarning = "start date after end date"
		return entry
	}

	d := effectiveEnd.Sub(start)
	entry.Duration = &d
	return entry
}

// roleText prefers text on the same line before the dates, falling back to
// the previous line.
func roleText(sameLine, prevLine string) string {
	cleaned := strings.Trim(strings.TrimSpace(sameLine), "-–—|,(")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned != "" {
		return cleaned
	}
	return strings.TrimSpace(prevLine)
}

var roleKeywords = []string{
	"engineer", "developer", "intern", "analyst", "manager", "consultant",
	"scientist", "architect", "designer", "administrator", "lead", "specialist",
}

func looksLikeRole(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range roleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func monthYear(mon, year string) time.Time {
	m := monthIndex[strings.ToLower(mon)[:3]]
	y, _ := strconv.Atoi(year)
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
