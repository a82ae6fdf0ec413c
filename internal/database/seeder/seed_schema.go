package seeder

import (
	"context"

	"github.com/sriraghavi22/career-catalyst-project/internal/database"
)

// SchemaSeeder asserts the scoring tables exist with the columns the
// repositories write. It runs after migrations and fails fast on drift.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "match_results",
		"id", "student_id", "job_id",
		"match_score", "similarity_score", "keyword_score", "experience_score",
		"computed_at",
	); err != nil {
		return err
	}

	return EnsureTableColumns(ctx, db, "resume_analyses",
		"id", "student_id",
		"resume_score", "ats_score", "experience_score", "skill_breadth",
		"strengths", "improvement_areas",
		"computed_at",
	)
}
