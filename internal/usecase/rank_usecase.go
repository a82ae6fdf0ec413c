package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
	"github.com/sriraghavi22/career-catalyst-project/internal/extract"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/extractor"
	"github.com/sriraghavi22/career-catalyst-project/internal/matching"
	"github.com/sriraghavi22/career-catalyst-project/internal/rank"
	"github.com/sriraghavi22/career-catalyst-project/internal/repository"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
)

const maxRankBatch = 200

// RankCache is the optional read-through cache for ranking runs. The redis
// adapter satisfies it; a nil cache disables caching entirely.
type RankCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RankNotifier announces completed ranking runs to connected dashboards.
type RankNotifier interface {
	NotifyRanked(jobID uuid.UUID, scored, failed, unscored int)
}

type RankParams struct {
	Job       JobInput
	Resumes   []ResumeInput
	TopN      int
	Ascending bool
}

type RankOutput struct {
	JobID     uuid.UUID      `json:"job_id"`
	Results   []match.Result `json:"results"`
	Failures  []rank.Failure `json:"failures"`
	Unscored  int            `json:"unscored"`
	FromCache bool           `json:"-"`
}

type RankUsecase interface {
	RankCandidates(ctx context.Context, params RankParams) (RankOutput, error)
}

type Rank struct {
	engine    *matching.Engine
	batch     *rank.Batch
	extractor extractor.TextExtractor
	results   repository.MatchResultRepository
	cache     RankCache
	cacheTTL  time.Duration
	notifier  RankNotifier
	logger    *log.Logger
	now       func() time.Time
}

func NewRankUsecase(engine *matching.Engine, batch *rank.Batch, ext extractor.TextExtractor, results repository.MatchResultRepository, cache RankCache, cacheTTL time.Duration, notifier RankNotifier, logger *log.Logger) *Rank {
	return &Rank{
		engine:    engine,
		batch:     batch,
		extractor: ext,
		results:   results,
		cache:     cache,
		cacheTTL:  cacheTTL,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (u *Rank) RankCandidates(ctx context.Context, params RankParams) (RankOutput, error) {
	if params.Job.JobID == uuid.Nil {
		return RankOutput{}, ErrInvalidInput
	}
	if len(params.Resumes) == 0 || len(params.Resumes) > maxRankBatch {
		return RankOutput{}, ErrInvalidInput
	}

	posting, err := extract.BuildPosting(params.Job.JobID, params.Job.Title, params.Job.Description, params.Job.RequiredSkills, u.engine.Taxonomy())
	if err != nil {
		if errors.Is(err, text.ErrExtractionEmpty) {
			return RankOutput{}, ErrInvalidInput
		}
		return RankOutput{}, ErrInternal
	}

	now := u.now()
	docs := make([]resume.Document, 0, len(params.Resumes))
	prefailed := make([]rank.Failure, 0)
	for _, in := range params.Resumes {
		if in.StudentID == uuid.Nil {
			return RankOutput{}, ErrInvalidInput
		}
		doc, err := buildResume(in, u.extractor, u.engine, now)
		if err != nil {
			// Unreadable uploads become per-candidate failures instead of
			// sinking the whole batch.
			prefailed = append(prefailed, rank.Failure{StudentID: in.StudentID, Reason: rank.ReasonError, Err: err})
			continue
		}
		docs = append(docs, doc)
	}

	key := RankRunCacheKey(posting, docs)

	if u.cache != nil {
		var cached RankOutput
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Printf("Rank cache read failed | key=%s error=%v", key, err)
		}
		if hit {
			cached.FromCache = true
			cached.Failures = mergeFailures(cached.Failures, prefailed)
			return shapeOutput(cached, params), nil
		}
	}

	br := u.batch.Score(ctx, u.engine, posting, docs)

	out := RankOutput{
		JobID:    posting.ID,
		Results:  br.Results,
		Failures: mergeFailures(br.Failures, prefailed),
		Unscored: br.Unscored,
	}

	if u.results != nil {
		for _, res := range br.Results {
			if err := u.results.Upsert(ctx, res); err != nil {
				u.logger.Printf("Match persist failed | student_id=%s job_id=%s error=%v", res.StudentID, res.JobID, err)
				break
			}
		}
	}

	// Only complete runs are cached; a cancelled run would pin partial
	// results until the TTL expires.
	if u.cache != nil && out.Unscored == 0 {
		if err := u.cache.SetJSON(ctx, key, out, u.cacheTTL); err != nil {
			u.logger.Printf("Rank cache write failed | key=%s error=%v", key, err)
		}
	}

	if u.notifier != nil {
		u.notifier.NotifyRanked(posting.ID, len(out.Results), len(out.Failures), out.Unscored)
	}

	return shapeOutput(out, params), nil
}

// shapeOutput applies the presentation options without disturbing the
// canonical ordering stored in the cache. TopN selects against the canonical
// descending order before the ascending toggle reverses the view, so both
// options compose.
func shapeOutput(out RankOutput, params RankParams) RankOutput {
	results := out.Results
	if params.TopN > 0 {
		results = rank.TopN(results, params.TopN)
	}
	if params.Ascending {
		results = rank.Ascending(results)
	}
	out.Results = results
	return out
}

func mergeFailures(a, b []rank.Failure) []rank.Failure {
	if len(b) == 0 {
		return a
	}
	merged := make([]rank.Failure, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}
