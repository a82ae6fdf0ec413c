package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
	"github.com/sriraghavi22/career-catalyst-project/internal/extract"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/extractor"
	"github.com/sriraghavi22/career-catalyst-project/internal/matching"
	"github.com/sriraghavi22/career-catalyst-project/internal/repository"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

type JobInput struct {
	JobID          uuid.UUID
	Title          string
	Description    string
	RequiredSkills []string
}

type MatchParams struct {
	Resume ResumeInput
	Job    JobInput
}

type MatchUsecase interface {
	ScoreMatch(ctx context.Context, params MatchParams) (match.Result, error)
}

type Match struct {
	engine    *matching.Engine
	extractor extractor.TextExtractor
	results   repository.MatchResultRepository
	logger    *log.Logger
	now       func() time.Time
}

func NewMatchUsecase(engine *matching.Engine, ext extractor.TextExtractor, results repository.MatchResultRepository, logger *log.Logger) *Match {
	return &Match{engine: engine, extractor: ext, results: results, logger: logger, now: time.Now}
}

func (u *Match) ScoreMatch(ctx context.Context, params MatchParams) (match.Result, error) {
	if params.Resume.StudentID == uuid.Nil || params.Job.JobID == uuid.Nil {
		return match.Result{}, ErrInvalidInput
	}

	doc, err := buildResume(params.Resume, u.extractor, u.engine, u.now())
	if err != nil {
		return match.Result{}, err
	}

	posting, err := extract.BuildPosting(params.Job.JobID, params.Job.Title, params.Job.Description, params.Job.RequiredSkills, u.engine.Taxonomy())
	if err != nil {
		if errors.Is(err, text.ErrExtractionEmpty) {
			return match.Result{}, ErrInvalidInput
		}
		return match.Result{}, ErrInternal
	}

	result, err := u.engine.ScoreMatch(doc, posting)
	if err != nil {
		if errors.Is(err, text.ErrExtractionEmpty) {
			return match.Result{}, ErrResumeEmpty
		}
		return match.Result{}, ErrInternal
	}

	if u.results != nil {
		if err := u.results.Upsert(ctx, result); err != nil {
			u.logger.Printf("Match persist failed | student_id=%s job_id=%s error=%v", result.StudentID, result.JobID, err)
		}
	}

	return result, nil
}
