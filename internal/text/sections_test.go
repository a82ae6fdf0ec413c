package text

import (
	"strings"
	"testing"
)

const sectionedResume = `Jane Doe
jane@example.com

Professional Summary
Backend engineer with eight years in distributed systems.

Technical Skills:
Go, PostgreSQL, Docker

Work Experience
Senior Engineer, Acme Corp
2019 - Present

Education
B.Tech in Computer Science, 2015

Hobbies:
Chess and hiking
`

func TestSplitSections_MapsKnownHeadings(t *testing.T) {
	got := SplitSections(sectionedResume)

	if !strings.Contains(got[SectionSummary], "distributed systems") {
		t.Fatalf("summary bucket missing content: %q", got[SectionSummary])
	}
	if !strings.Contains(got[SectionSkills], "Go, PostgreSQL, Docker") {
		t.Fatalf("skills bucket missing content: %q", got[SectionSkills])
	}
	if !strings.Contains(got[SectionExperience], "Acme Corp") {
		t.Fatalf("experience bucket missing content: %q", got[SectionExperience])
	}
	if !strings.Contains(got[SectionEducation], "B.Tech") {
		t.Fatalf("education bucket missing content: %q", got[SectionEducation])
	}
}

func TestSplitSections_PreHeadingTextIsUncategorized(t *testing.T) {
	got := SplitSections(sectionedResume)
	if !strings.Contains(got[SectionUncategorized], "jane@example.com") {
		t.Fatalf("expected pre-heading lines in uncategorized, got %q", got[SectionUncategorized])
	}
}

func TestSplitSections_UnknownHeadingKeepsContent(t *testing.T) {
	got := SplitSections(sectionedResume)
	if !strings.Contains(got[SectionUncategorized], "Chess and hiking") {
		t.Fatalf("expected unknown-heading content retained, got %q", got[SectionUncategorized])
	}
	for _, sec := range KnownSections {
		if sec == SectionUncategorized {
			continue
		}
		if strings.Contains(got[sec], "Hobbies") {
			t.Fatalf("unknown heading leaked into %s", sec)
		}
	}
}

func TestSplitSections_HeadingVariants(t *testing.T) {
	raw := "CONTACT INFORMATION\nphone 555\n\nEmployment:\nEngineer at Beta\n\nCertificates\nAWS SAA"
	got := SplitSections(raw)

	if !strings.Contains(got[SectionContact], "phone 555") {
		t.Fatalf("contact variant not matched: %v", got)
	}
	if !strings.Contains(got[SectionExperience], "Engineer at Beta") {
		t.Fatalf("employment variant not matched: %v", got)
	}
	if !strings.Contains(got[SectionCertifications], "AWS SAA") {
		t.Fatalf("certificates variant not matched: %v", got)
	}
}

func TestSplitSections_SkillLinesAreNotHeadings(t *testing.T) {
	raw := "Skills\nSQL\nAWS\nGo"
	got := SplitSections(raw)
	for _, want := range []string{"SQL", "AWS", "Go"} {
		if !strings.Contains(got[SectionSkills], want) {
			t.Fatalf("short skill line %q dropped: %q", want, got[SectionSkills])
		}
	}
}
