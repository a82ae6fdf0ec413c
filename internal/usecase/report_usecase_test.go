package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/repository"
)

func TestReportUsecase_ListJobMatches(t *testing.T) {
	jobID := uuid.New()
	repo := &fakeResultRepo{rows: []repository.MatchResultRow{
		{StudentID: uuid.New(), JobID: jobID, MatchScore: 88},
		{StudentID: uuid.New(), JobID: jobID, MatchScore: 42},
	}}
	uc := NewReportUsecase(repo, testLogger())

	rows, err := uc.ListJobMatches(context.Background(), jobID, 10)
	if err != nil {
		t.Fatalf("ListJobMatches: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
}

func TestReportUsecase_MissingJobID(t *testing.T) {
	uc := NewReportUsecase(&fakeResultRepo{}, testLogger())

	_, err := uc.ListJobMatches(context.Background(), uuid.Nil, 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestReportUsecase_PersistenceDisabled(t *testing.T) {
	uc := NewReportUsecase(nil, testLogger())

	_, err := uc.ListJobMatches(context.Background(), uuid.New(), 10)
	if !errors.Is(err, ErrPersistenceDisabled) {
		t.Fatalf("err = %v, want ErrPersistenceDisabled", err)
	}
}

func TestReportUsecase_RepositoryError(t *testing.T) {
	repo := &fakeResultRepo{err: errors.New("db down")}
	uc := NewReportUsecase(repo, testLogger())

	_, err := uc.ListJobMatches(context.Background(), uuid.New(), 10)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}
