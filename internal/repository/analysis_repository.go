package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/database"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
)

type AnalysisRow struct {
	StudentID        uuid.UUID
	ResumeScore      float64
	ATSScore         float64
	ExperienceScore  float64
	SkillBreadth     int
	Strengths        []string
	ImprovementAreas []string
	ComputedAt       time.Time
}

type AnalysisRepository interface {
	Upsert(ctx context.Context, a match.Analysis) error
	GetByStudent(ctx context.Context, studentID uuid.UUID) (*AnalysisRow, error)
}

type PostgresAnalysisRepository struct {
	db database.DB
}

func NewPostgresAnalysisRepository(db database.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

func (r *PostgresAnalysisRepository) Upsert(ctx context.Context, a match.Analysis) error {
	if a.StudentID == uuid.Nil {
		return nil
	}
	computedAt := a.ComputedAt
	if computedAt.IsZero() {
		computedAt = time.Now().UTC()
	}

	strengths, err := json.Marshal(emptyIfNil(a.Strengths))
	if err != nil {
		return err
	}
	improvements, err := json.Marshal(emptyIfNil(a.ImprovementAreas))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO resume_analyses (id, student_id, resume_score, ats_score, experience_score, skill_breadth, strengths, improvement_areas, computed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (student_id) DO UPDATE SET
			resume_score = EXCLUDED.resume_score,
			ats_score = EXCLUDED.ats_score,
			experience_score = EXCLUDED.experience_score,
			skill_breadth = EXCLUDED.skill_breadth,
			strengths = EXCLUDED.strengths,
			improvement_areas = EXCLUDED.improvement_areas,
			computed_at = EXCLUDED.computed_at`,
		uuid.New(),
		a.StudentID,
		a.ResumeScore,
		a.ATSScore,
		a.ExperienceScore,
		a.SkillBreadth,
		strengths,
		improvements,
		computedAt,
	)
	return err
}

func (r *PostgresAnalysisRepository) GetByStudent(ctx context.Context, studentID uuid.UUID) (*AnalysisRow, error) {
	var (
		row          AnalysisRow
		strengths    []byte
		improvements []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT student_id, resume_score, ats_score, experience_score, skill_breadth, strengths, improvement_areas, computed_at
		 FROM resume_analyses
		 WHERE student_id = $1`,
		studentID,
	).Scan(
		&row.StudentID,
		&row.ResumeScore,
		&row.ATSScore,
		&row.ExperienceScore,
		&row.SkillBreadth,
		&strengths,
		&improvements,
		&row.ComputedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(strengths, &row.Strengths); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(improvements, &row.ImprovementAreas); err != nil {
		return nil, err
	}
	return &row, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
