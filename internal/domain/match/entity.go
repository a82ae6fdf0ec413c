package match

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of scoring one (resume, job) pair. Scores are in
// [0,100]; the pair key is unique per (StudentID, JobID). Results are
// computed fresh per request; persistence is advisory caching only.
type Result struct {
	StudentID       uuid.UUID
	JobID           uuid.UUID
	MatchScore      float64
	SimilarityScore float64
	KeywordScore    float64
	ExperienceScore float64
	MatchedSkills   []string
	MissingSkills   []string
	ComputedAt      time.Time

	// Extra carries optional narrative fields only; scores never live here.
	Extra map[string]string
}

// SectionAssessment is the per-section verdict inside an analysis report.
type SectionAssessment struct {
	Section string
	Present bool
	Comment string
}

// Analysis is the student-facing, job-agnostic report. It is a value
// handed to the reporting collaborator, not an entity with identity.
type Analysis struct {
	StudentID        uuid.UUID
	ResumeScore      float64
	ATSScore         float64
	ExperienceScore  float64
	SkillBreadth     int
	Strengths        []string
	ImprovementAreas []string
	Sections         []SectionAssessment
	ComputedAt       time.Time
}
