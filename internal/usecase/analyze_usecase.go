package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/extractor"
	"github.com/sriraghavi22/career-catalyst-project/internal/matching"
	"github.com/sriraghavi22/career-catalyst-project/internal/repository"
)

type AnalyzeParams struct {
	Resume     ResumeInput
	TargetRole string
}

type AnalyzeUsecase interface {
	AnalyzeResume(ctx context.Context, params AnalyzeParams) (match.Analysis, error)
}

type Analyze struct {
	engine    *matching.Engine
	extractor extractor.TextExtractor
	analyses  repository.AnalysisRepository
	logger    *log.Logger
	now       func() time.Time
}

func NewAnalyzeUsecase(engine *matching.Engine, ext extractor.TextExtractor, analyses repository.AnalysisRepository, logger *log.Logger) *Analyze {
	return &Analyze{engine: engine, extractor: ext, analyses: analyses, logger: logger, now: time.Now}
}

func (u *Analyze) AnalyzeResume(ctx context.Context, params AnalyzeParams) (match.Analysis, error) {
	if params.Resume.StudentID == uuid.Nil {
		return match.Analysis{}, ErrInvalidInput
	}

	doc, err := buildResume(params.Resume, u.extractor, u.engine, u.now())
	if err != nil {
		return match.Analysis{}, err
	}

	analysis, err := u.engine.AnalyzeResume(doc, params.TargetRole)
	if err != nil {
		return match.Analysis{}, ErrInternal
	}

	// Persistence is advisory. A storage outage should not block the
	// analysis the caller already paid to compute.
	if u.analyses != nil {
		if err := u.analyses.Upsert(ctx, analysis); err != nil {
			u.logger.Printf("Analysis persist failed | student_id=%s error=%v", analysis.StudentID, err)
		}
	}

	return analysis, nil
}
