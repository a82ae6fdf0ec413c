package resume

import (
	"time"

	"github.com/google/uuid"
)

// Document is a parsed resume, built once per scoring request and never
// mutated after extraction.
type Document struct {
	ID              uuid.UUID
	RawText         string
	NormalizedText  string
	Skills          []string
	Unclassified    []string
	Experience      []ExperienceEntry
	Education       []EducationEntry
	Sections        map[string]string
	UnparsedRegions int
}

// ExperienceEntry is one role from the work-history section. End is nil for
// a current role. Duration is nil when the dates could not be parsed; such
// entries keep their place in the list but contribute zero weight.
type ExperienceEntry struct {
	Role        string
	Start       *time.Time
	End         *time.Time
	Current     bool
	Duration    *time.Duration
	Description string
	DateWarning string
}

type EducationEntry struct {
	Institution string
	Degree      string
	Year        int
}

// HasSkill reports whether the extracted (canonical) skill set contains name.
func (d Document) HasSkill(name string) bool {
	for _, s := range d.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// Years returns the entry duration in fractional years, zero when unknown.
func (e ExperienceEntry) Years() float64 {
	if e.Duration == nil {
		return 0
	}
	return e.Duration.Hours() / (24 * 365.25)
}
