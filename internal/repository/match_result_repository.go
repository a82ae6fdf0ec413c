package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/database"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
)

// MatchResultRow is the persisted snapshot of one scored pair. The engine
// never reads it back for scoring; it exists for dashboards and CSV export.
type MatchResultRow struct {
	StudentID       uuid.UUID
	JobID           uuid.UUID
	MatchScore      float64
	SimilarityScore float64
	KeywordScore    float64
	ExperienceScore float64
	ComputedAt      time.Time
}

type MatchResultRepository interface {
	Upsert(ctx context.Context, res match.Result) error
	ListByJob(ctx context.Context, jobID uuid.UUID, limit int) ([]MatchResultRow, error)
}

type PostgresMatchResultRepository struct {
	db database.DB
}

func NewPostgresMatchResultRepository(db database.DB) *PostgresMatchResultRepository {
	return &PostgresMatchResultRepository{db: db}
}

func (r *PostgresMatchResultRepository) Upsert(ctx context.Context, res match.Result) error {
	if res.StudentID == uuid.Nil || res.JobID == uuid.Nil {
		return nil
	}
	computedAt := res.ComputedAt
	if computedAt.IsZero() {
		computedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO match_results (id, student_id, job_id, match_score, similarity_score, keyword_score, experience_score, computed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (student_id, job_id) DO UPDATE SET
			match_score = EXCLUDED.match_score,
			similarity_score = EXCLUDED.similarity_score,
			keyword_score = EXCLUDED.keyword_score,
			experience_score = EXCLUDED.experience_score,
			computed_at = EXCLUDED.computed_at`,
		uuid.New(),
		res.StudentID,
		res.JobID,
		res.MatchScore,
		res.SimilarityScore,
		res.KeywordScore,
		res.ExperienceScore,
		computedAt,
	)
	return err
}

func (r *PostgresMatchResultRepository) ListByJob(ctx context.Context, jobID uuid.UUID, limit int) ([]MatchResultRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT student_id, job_id, match_score, similarity_score, keyword_score, experience_score, computed_at
		 FROM match_results
		 WHERE job_id = $1
		 ORDER BY match_score DESC, experience_score DESC, student_id ASC
		 LIMIT $2`,
		jobID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MatchResultRow, 0, limit)
	for rows.Next() {
		var row MatchResultRow
		if err := rows.Scan(
			&row.StudentID,
			&row.JobID,
			&row.MatchScore,
			&row.SimilarityScore,
			&row.KeywordScore,
			&row.ExperienceScore,
			&row.ComputedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
