package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/repository"
)

type ReportUsecase interface {
	ListJobMatches(ctx context.Context, jobID uuid.UUID, limit int) ([]repository.MatchResultRow, error)
}

// Report serves persisted scoring snapshots for dashboards and CSV export.
type Report struct {
	results repository.MatchResultRepository
	logger  *log.Logger
}

func NewReportUsecase(results repository.MatchResultRepository, logger *log.Logger) *Report {
	return &Report{results: results, logger: logger}
}

func (u *Report) ListJobMatches(ctx context.Context, jobID uuid.UUID, limit int) ([]repository.MatchResultRow, error) {
	if jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if u.results == nil {
		return nil, ErrPersistenceDisabled
	}
	rows, err := u.results.ListByJob(ctx, jobID, limit)
	if err != nil {
		u.logger.Printf("List job matches failed | job_id=%s error=%v", jobID, err)
		return nil, ErrInternal
	}
	return rows, nil
}
