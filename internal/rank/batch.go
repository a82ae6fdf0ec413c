package rank

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/job"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
)

// Scorer is the single-pair scoring dependency of a batch run.
type Scorer interface {
	ScoreMatch(doc resume.Document, posting job.Posting) (match.Result, error)
}

// Reason codes for per-item failures.
const (
	ReasonTimeout = "timeout"
	ReasonError   = "error"
)

// Failure records one pair that could not be scored. Failures are reported
// alongside successes; they never abort the rest of the batch.
type Failure struct {
	StudentID uuid.UUID `json:"student_id"`
	Reason    string    `json:"reason"`
	Err       error     `json:"-"`
}

// BatchResult carries partial results: every scored pair, every explicit
// failure, and the count of pairs that were never scheduled because the
// batch was cancelled.
type BatchResult struct {
	Results  []match.Result
	Failures []Failure
	Unscored int
}

// Batch scores one job against many resumes in parallel. Pairs are
// independent pure computations, so the only shared state is the scorer's
// read-only configuration.
type Batch struct {
	workers     int
	itemTimeout time.Duration
	logger      *log.Logger
}

const defaultItemTimeout = 5 * time.Second

func NewBatch(workers int, itemTimeout time.Duration, logger *log.Logger) *Batch {
	if workers <= 0 {
		workers = 4
	}
	if itemTimeout <= 0 {
		itemTimeout = defaultItemTimeout
	}
	return &Batch{workers: workers, itemTimeout: itemTimeout, logger: logger}
}

type itemOutcome struct {
	result  match.Result
	failure *Failure
}

// Score runs the pool. Cancelling ctx stops scheduling new pairs but lets
// in-flight pairs complete; the output is always deterministic ordering-wise
// (results ordered by rank, failures by student id).
func (b *Batch) Score(ctx context.Context, scorer Scorer, posting job.Posting, docs []resume.Document) BatchResult {
	tasks := make(chan resume.Document)
	outcomes := make(chan itemOutcome, len(docs))

	var unscored int
	var feedWG sync.WaitGroup
	feedWG.Add(1)
	go func() {
		defer feedWG.Done()
		defer close(tasks)
		for i, doc := range docs {
			select {
			case <-ctx.Done():
				unscored = len(docs) - i
				return
			case tasks <- doc:
			}
		}
	}()

	var workWG sync.WaitGroup
	workWG.Add(b.workers)
	for i := 0; i < b.workers; i++ {
		go func() {
			defer workWG.Done()
			for doc := range tasks {
				outcomes <- b.scoreOne(scorer, doc, posting)
			}
		}()
	}

	feedWG.Wait()
	workWG.Wait()
	close(outcomes)

	out := BatchResult{
		Results:  make([]match.Result, 0, len(docs)),
		Failures: make([]Failure, 0),
	}
	for o := range outcomes {
		if o.failure != nil {
			out.Failures = append(out.Failures, *o.failure)
			continue
		}
		out.Results = append(out.Results, o.result)
	}
	out.Unscored = unscored

	out.Results = Order(out.Results)
	sort.Slice(out.Failures, func(i, j int) bool {
		return strings.Compare(out.Failures[i].StudentID.String(), out.Failures[j].StudentID.String()) < 0
	})

	if b.logger != nil {
		b.logger.Printf("Batch scored | job_id=%s scored=%d failed=%d unscored=%d",
			posting.ID, len(out.Results), len(out.Failures), out.Unscored)
	}
	return out
}

// scoreOne runs a single pure scoring computation under the per-item
// timeout. The computation cannot be interrupted mid-flight; on timeout its
// goroutine finishes in the background and the outcome is discarded.
func (b *Batch) scoreOne(scorer Scorer, doc resume.Document, posting job.Posting) itemOutcome {
	type scored struct {
		result match.Result
		err    error
	}
	done := make(chan scored, 1)
	go func() {
		r, err := scorer.ScoreMatch(doc, posting)
		done <- scored{result: r, err: err}
	}()

	timer := time.NewTimer(b.itemTimeout)
	defer timer.Stop()

	select {
	case s := <-done:
		if s.err != nil {
			return itemOutcome{failure: &Failure{StudentID: doc.ID, Reason: ReasonError, Err: s.err}}
		}
		return itemOutcome{result: s.result}
	case <-timer.C:
		if b.logger != nil {
			b.logger.Printf("Batch item timeout | student_id=%s job_id=%s timeout=%s", doc.ID, posting.ID, b.itemTimeout)
		}
		return itemOutcome{failure: &Failure{StudentID: doc.ID, Reason: ReasonTimeout, Err: context.DeadlineExceeded}}
	}
}
