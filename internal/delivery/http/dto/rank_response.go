package dto

import (
	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/usecase"
)

type RankFailureResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	Reason    string    `json:"reason"`
}

type RankResponse struct {
	JobID     uuid.UUID             `json:"job_id"`
	Results   []MatchResultResponse `json:"results"`
	Failures  []RankFailureResponse `json:"failures"`
	Unscored  int                   `json:"unscored"`
	FromCache bool                  `json:"from_cache"`
}

func NewRankResponse(out usecase.RankOutput) RankResponse {
	results := make([]MatchResultResponse, 0, len(out.Results))
	for _, res := range out.Results {
		results = append(results, NewMatchResultResponse(res))
	}
	failures := make([]RankFailureResponse, 0, len(out.Failures))
	for _, f := range out.Failures {
		failures = append(failures, RankFailureResponse{StudentID: f.StudentID, Reason: f.Reason})
	}
	return RankResponse{
		JobID:     out.JobID,
		Results:   results,
		Failures:  failures,
		Unscored:  out.Unscored,
		FromCache: out.FromCache,
	}
}
