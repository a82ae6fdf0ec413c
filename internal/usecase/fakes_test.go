package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
	"github.com/sriraghavi22/career-catalyst-project/internal/matching"
	"github.com/sriraghavi22/career-catalyst-project/internal/repository"
	"github.com/sriraghavi22/career-catalyst-project/internal/taxonomy"
)

const testResumeText = `Jane Doe
jane.doe@example.com

Experience
Backend Engineer Jan 2020 - Present
Built Go services with PostgreSQL and Docker.

Skills
Go, PostgreSQL, Docker, Kubernetes
`

const testJobDescription = `Hiring a backend engineer for our Go platform team.
Daily work involves PostgreSQL, Docker and Terraform.`

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testEngine(t *testing.T) *matching.Engine {
	t.Helper()
	eng, err := matching.NewEngine(taxonomy.Default(), matching.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng
}

type fakeResultRepo struct {
	upserts []match.Result
	rows    []repository.MatchResultRow
	err     error
}

func (r *fakeResultRepo) Upsert(ctx context.Context, res match.Result) error {
	if r.err != nil {
		return r.err
	}
	r.upserts = append(r.upserts, res)
	return nil
}

func (r *fakeResultRepo) ListByJob(ctx context.Context, jobID uuid.UUID, limit int) ([]repository.MatchResultRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

type fakeAnalysisRepo struct {
	upserts []match.Analysis
	err     error
}

func (r *fakeAnalysisRepo) Upsert(ctx context.Context, a match.Analysis) error {
	if r.err != nil {
		return r.err
	}
	r.upserts = append(r.upserts, a)
	return nil
}

func (r *fakeAnalysisRepo) GetByStudent(ctx context.Context, studentID uuid.UUID) (*repository.AnalysisRow, error) {
	return nil, nil
}

type fakeRankCache struct {
	store map[string][]byte
	sets  int
}

func newFakeRankCache() *fakeRankCache {
	return &fakeRankCache{store: make(map[string][]byte)}
}

func (c *fakeRankCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeRankCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.sets++
	c.store[key] = b
	return nil
}

type notifyCall struct {
	jobID    uuid.UUID
	scored   int
	failed   int
	unscored int
}

type fakeNotifier struct {
	calls []notifyCall
}

func (n *fakeNotifier) NotifyRanked(jobID uuid.UUID, scored, failed, unscored int) {
	n.calls = append(n.calls, notifyCall{jobID: jobID, scored: scored, failed: failed, unscored: unscored})
}
