package extract

import (
	"strings"
	"testing"
)

func TestEducation_DegreeInstitutionYear(t *testing.T) {
	section := "B.Tech in Computer Science, State University, 2015"

	entries := Education(section)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if !strings.EqualFold(e.Degree, "b.tech") {
		t.Fatalf("degree = %q", e.Degree)
	}
	if e.Institution != "State University" {
		t.Fatalf("institution = %q", e.Institution)
	}
	if e.Year != 2015 {
		t.Fatalf("year = %d", e.Year)
	}
}

func TestEducation_InstitutionOnAdjacentLine(t *testing.T) {
	section := "Master of Science in Data Science\nCentral Institute of Technology\n2020"

	entries := Education(section)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if !strings.Contains(strings.ToLower(e.Degree), "master") {
		t.Fatalf("degree = %q", e.Degree)
	}
	if e.Institution != "Central Institute of Technology" {
		t.Fatalf("institution = %q", e.Institution)
	}
}

func TestEducation_NoDegreeNoEntries(t *testing.T) {
	if got := Education("just some text\nwith no credentials"); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}
