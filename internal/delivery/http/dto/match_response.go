package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
)

type MatchResultResponse struct {
	StudentID       uuid.UUID `json:"student_id"`
	JobID           uuid.UUID `json:"job_id"`
	MatchScore      float64   `json:"match_score"`
	SimilarityScore float64   `json:"similarity_score"`
	KeywordScore    float64   `json:"keyword_score"`
	ExperienceScore float64   `json:"experience_score"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	ComputedAt      time.Time `json:"computed_at"`
}

func NewMatchResultResponse(res match.Result) MatchResultResponse {
	return MatchResultResponse{
		StudentID:       res.StudentID,
		JobID:           res.JobID,
		MatchScore:      res.MatchScore,
		SimilarityScore: res.SimilarityScore,
		KeywordScore:    res.KeywordScore,
		ExperienceScore: res.ExperienceScore,
		MatchedSkills:   emptyIfNil(res.MatchedSkills),
		MissingSkills:   emptyIfNil(res.MissingSkills),
		ComputedAt:      res.ComputedAt,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
