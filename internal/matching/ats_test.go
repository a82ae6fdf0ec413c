package matching

import (
	"strings"
	"testing"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
)

func wellFormedDoc() resume.Document {
	return resume.Document{
		RawText:        "Jane Doe\njane.doe@example.com\nExperience\n...",
		NormalizedText: strings.TrimSpace(strings.Repeat("word ", 200)),
		Skills:         []string{"go", "docker", "postgresql"},
		Sections: map[string]string{
			"experience": "backend engineer acme corp",
			"education":  "b.tech state university",
			"skills":     "go docker postgresql",
		},
	}
}

func TestATSScore_WellFormedResume(t *testing.T) {
	rep := ATSScore(wellFormedDoc())
	if rep.Score != 100 {
		t.Fatalf("score = %v, want 100 (failed rules: %v)", rep.Score, rep.Failed)
	}
	if len(rep.Failed) != 0 {
		t.Fatalf("failed rules = %v, want none", rep.Failed)
	}
	if len(rep.Passed) != 7 {
		t.Fatalf("passed rules = %v, want all 7", rep.Passed)
	}
}

func TestATSScore_MissingContact(t *testing.T) {
	doc := wellFormedDoc()
	doc.RawText = "Jane Doe\nExperience\n..."

	rep := ATSScore(doc)
	if rep.Score != 85 {
		t.Fatalf("score = %v, want 85", rep.Score)
	}
	if !containsRule(rep.Failed, "contact information") {
		t.Fatalf("failed = %v, want contact information", rep.Failed)
	}
}

func TestATSScore_PhoneCountsAsContact(t *testing.T) {
	doc := wellFormedDoc()
	doc.RawText = "Jane Doe\n+1 (555) 123-4567\nExperience"

	rep := ATSScore(doc)
	if !containsRule(rep.Passed, "contact information") {
		t.Fatalf("passed = %v, want contact information", rep.Passed)
	}
}

func TestATSScore_UnparsedRegionsPenalized(t *testing.T) {
	doc := wellFormedDoc()
	doc.UnparsedRegions = 2

	rep := ATSScore(doc)
	if rep.Score != 90 {
		t.Fatalf("score = %v, want 90", rep.Score)
	}
	if !containsRule(rep.Failed, "parseable layout") {
		t.Fatalf("failed = %v, want parseable layout", rep.Failed)
	}

	// penalty floors at zero, it never goes negative
	doc.UnparsedRegions = 10
	rep = ATSScore(doc)
	if rep.Score != 85 {
		t.Fatalf("score = %v, want 85", rep.Score)
	}
}

func TestATSScore_LengthBands(t *testing.T) {
	cases := []struct {
		words int
		want  float64
	}{
		{30, 0},
		{60, 5},
		{119, 5},
		{120, 15},
		{1000, 15},
		{1200, 5},
		{1600, 0},
	}
	for _, tc := range cases {
		got := lengthPoints(strings.TrimSpace(strings.Repeat("word ", tc.words)))
		if got != tc.want {
			t.Fatalf("lengthPoints(%d words) = %v, want %v", tc.words, got, tc.want)
		}
	}
}

func TestATSScore_DensityBands(t *testing.T) {
	base := resume.Document{NormalizedText: strings.TrimSpace(strings.Repeat("word ", 1000))}

	cases := []struct {
		skills int
		want   float64
	}{
		{0, 0},
		{2, 5},
		{6, 10},
		{15, 15},
	}
	for _, tc := range cases {
		doc := base
		doc.Skills = make([]string, tc.skills)
		got := densityPoints(doc)
		if got != tc.want {
			t.Fatalf("densityPoints(%d skills / 1000 words) = %v, want %v", tc.skills, got, tc.want)
		}
	}
}

func TestATSScore_SectionFallsBackToEntries(t *testing.T) {
	// parsed entries satisfy the rule even when the heading was not detected
	doc := wellFormedDoc()
	doc.Sections = nil
	doc.Education = []resume.EducationEntry{{Degree: "b.tech", Year: 2015}}
	doc.Experience = []resume.ExperienceEntry{{Role: "Backend Engineer"}}

	rep := ATSScore(doc)
	if !containsRule(rep.Passed, "education section") || !containsRule(rep.Passed, "experience section") {
		t.Fatalf("passed = %v", rep.Passed)
	}
}

func containsRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}
