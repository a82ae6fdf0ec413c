package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
)

type SectionAssessmentResponse struct {
	Section string `json:"section"`
	Present bool   `json:"present"`
	Comment string `json:"comment"`
}

type AnalysisResponse struct {
	StudentID        uuid.UUID                   `json:"student_id"`
	ResumeScore      float64                     `json:"resume_score"`
	ATSScore         float64                     `json:"ats_score"`
	ExperienceScore  float64                     `json:"experience_score"`
	SkillBreadth     int                         `json:"skill_breadth"`
	Strengths        []string                    `json:"strengths"`
	ImprovementAreas []string                    `json:"improvement_areas"`
	Sections         []SectionAssessmentResponse `json:"sections"`
	ComputedAt       time.Time                   `json:"computed_at"`
}

func NewAnalysisResponse(a match.Analysis) AnalysisResponse {
	sections := make([]SectionAssessmentResponse, 0, len(a.Sections))
	for _, s := range a.Sections {
		sections = append(sections, SectionAssessmentResponse{Section: s.Section, Present: s.Present, Comment: s.Comment})
	}
	return AnalysisResponse{
		StudentID:        a.StudentID,
		ResumeScore:      a.ResumeScore,
		ATSScore:         a.ATSScore,
		ExperienceScore:  a.ExperienceScore,
		SkillBreadth:     a.SkillBreadth,
		Strengths:        emptyIfNil(a.Strengths),
		ImprovementAreas: emptyIfNil(a.ImprovementAreas),
		Sections:         sections,
		ComputedAt:       a.ComputedAt,
	}
}
