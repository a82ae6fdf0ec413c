package matching

import (
	"math"
	"testing"
	"time"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/job"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
)

var expNow = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

func yearsDuration(y float64) *time.Duration {
	d := time.Duration(y * 365.25 * 24 * float64(time.Hour))
	return &d
}

func currentEntry(role string, years float64) resume.ExperienceEntry {
	start := expNow.Add(-*yearsDuration(years))
	return resume.ExperienceEntry{
		Role:     role,
		Start:    &start,
		Current:  true,
		Duration: yearsDuration(years),
	}
}

func pastEntry(role string, years, endedYearsAgo float64) resume.ExperienceEntry {
	end := expNow.Add(-*yearsDuration(endedYearsAgo))
	start := end.Add(-*yearsDuration(years))
	return resume.ExperienceEntry{
		Role:     role,
		Start:    &start,
		End:      &end,
		Duration: yearsDuration(years),
	}
}

func TestExperienceScore_CurrentRelevantRole(t *testing.T) {
	posting := job.Posting{Title: "Backend Developer"}
	entries := []resume.ExperienceEntry{currentEntry("Backend Engineer", 4)}

	got := ExperienceScore(entries, posting, DefaultConfig(), expNow)
	if math.Abs(got-50) > 1e-6 {
		t.Fatalf("score = %v, want 50", got)
	}
}

func TestExperienceScore_SaturatesAtFullScoreYears(t *testing.T) {
	posting := job.Posting{Title: "Backend Developer"}
	entries := []resume.ExperienceEntry{currentEntry("Backend Engineer", 12)}

	got := ExperienceScore(entries, posting, DefaultConfig(), expNow)
	if got != 100 {
		t.Fatalf("score = %v, want saturation at 100", got)
	}
}

func TestExperienceScore_RecencyHalvesPerHalfLife(t *testing.T) {
	posting := job.Posting{Title: "Backend Developer"}
	cfg := DefaultConfig()
	// ended exactly one half-life ago, so the 4 weighted years halve to 2
	entries := []resume.ExperienceEntry{pastEntry("Backend Engineer", 4, cfg.RecencyHalfLifeYears)}

	got := ExperienceScore(entries, posting, cfg, expNow)
	if math.Abs(got-25) > 1e-6 {
		t.Fatalf("score = %v, want 25", got)
	}
}

func TestExperienceScore_UnrelatedRoleReduced(t *testing.T) {
	posting := job.Posting{Title: "Backend Developer"}
	entries := []resume.ExperienceEntry{currentEntry("Accountant", 8)}

	got := ExperienceScore(entries, posting, DefaultConfig(), expNow)
	if math.Abs(got-60) > 1e-6 {
		t.Fatalf("score = %v, want 60", got)
	}
}

func TestExperienceScore_NilDurationContributesNothing(t *testing.T) {
	posting := job.Posting{Title: "Backend Developer"}
	entries := []resume.ExperienceEntry{
		{Role: "Backend Engineer", DateWarning: "unparseable date range: Since 2019"},
	}

	got := ExperienceScore(entries, posting, DefaultConfig(), expNow)
	if got != 0 {
		t.Fatalf("score = %v, want 0", got)
	}
}

func TestExperienceScore_NoEntries(t *testing.T) {
	got := ExperienceScore(nil, job.Posting{Title: "Backend Developer"}, DefaultConfig(), expNow)
	if got != 0 {
		t.Fatalf("score = %v, want 0", got)
	}
}

func TestExperienceScore_SeniorityFloor(t *testing.T) {
	entries := []resume.ExperienceEntry{currentEntry("Backend Engineer", 1)}
	cfg := DefaultConfig()

	// a senior posting implies a 5-year floor; one weighted year is under
	// half of it and gets discounted
	senior := job.Posting{Title: "Backend Developer", Seniority: job.SenioritySenior}
	unknown := job.Posting{Title: "Backend Developer"}

	got := ExperienceScore(entries, senior, cfg, expNow)
	if math.Abs(got-9.375) > 1e-6 {
		t.Fatalf("score = %v, want 9.375", got)
	}
	base := ExperienceScore(entries, unknown, cfg, expNow)
	if math.Abs(base-12.5) > 1e-6 {
		t.Fatalf("score = %v, want 12.5", base)
	}

	// at half the floor and above, no discount
	fit := []resume.ExperienceEntry{currentEntry("Backend Engineer", 4)}
	if got := ExperienceScore(fit, senior, cfg, expNow); math.Abs(got-50) > 1e-6 {
		t.Fatalf("score = %v, want 50", got)
	}
}

func TestRoleRelevance_GenericWordsIgnored(t *testing.T) {
	posting := job.Posting{Title: "Senior Software Engineer"}
	// "senior" alone must not count as a shared meaningful token
	if got := roleRelevance("Senior Accountant", posting); got != 0.6 {
		t.Fatalf("relevance = %v, want 0.6", got)
	}
	if got := roleRelevance("Junior Software Developer", posting); got != 1 {
		t.Fatalf("relevance = %v, want 1", got)
	}
}

func TestRoleRelevance_EmptyTitles(t *testing.T) {
	if got := roleRelevance("", job.Posting{Title: "Backend Developer"}); got != 0.6 {
		t.Fatalf("relevance = %v, want 0.6", got)
	}
}
