package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/config"
	"github.com/sriraghavi22/career-catalyst-project/internal/database"
	"github.com/sriraghavi22/career-catalyst-project/internal/database/migration"
	dbpostgres "github.com/sriraghavi22/career-catalyst-project/internal/database/postgres"
	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/middleware"
	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/routes"
	v1 "github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/routes/v1"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/cache"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/extractor"
	"github.com/sriraghavi22/career-catalyst-project/internal/matching"
	"github.com/sriraghavi22/career-catalyst-project/internal/rank"
	"github.com/sriraghavi22/career-catalyst-project/internal/repository"
	"github.com/sriraghavi22/career-catalyst-project/internal/taxonomy"
	"github.com/sriraghavi22/career-catalyst-project/internal/usecase"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type matchData struct {
	StudentID       uuid.UUID `json:"student_id"`
	JobID           uuid.UUID `json:"job_id"`
	MatchScore      float64   `json:"match_score"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	ExperienceScore float64   `json:"experience_score"`
}

type rankData struct {
	JobID    uuid.UUID   `json:"job_id"`
	Results  []matchData `json:"results"`
	Unscored int         `json:"unscored"`
}

const integrationResume = `John Doe
john.doe@example.com
(555) 123-4567

Summary
Backend engineer focused on distributed systems.

Skills
Go, PostgreSQL, Docker, Kubernetes, Redis

Experience
Senior Backend Engineer, Acme Corp
Jan 2019 - Present
Built Go services backed by PostgreSQL and Redis.

Education
B.Tech in Computer Science, State University, 2015
`

func TestIntegration_ScoreRankReportFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	app := newTestFiberApp(t, db)

	studentID := uuid.New()
	jobID := uuid.New()
	defer cleanupRows(t, db, studentID, jobID)

	jobBody := map[string]any{
		"job_id":          jobID.String(),
		"title":           "Senior Backend Engineer",
		"description":     "We need a senior engineer with Go, PostgreSQL and Docker experience. 5+ years required.",
		"required_skills": []string{"Go", "PostgreSQL", "Docker", "Terraform"},
	}

	scored := postJSON(t, app, "/api/v1/matches/score", map[string]any{
		"student_id":  studentID.String(),
		"resume_text": integrationResume,
		"job":         jobBody,
	})
	var md matchData
	if err := json.Unmarshal(scored.Data, &md); err != nil {
		t.Fatalf("decode match data: %v", err)
	}
	if md.MatchScore < 0 || md.MatchScore > 100 {
		t.Fatalf("match_score out of range: %v", md.MatchScore)
	}
	if !containsFold(md.MatchedSkills, "go") {
		t.Fatalf("expected matched_skills to contain go, got %v", md.MatchedSkills)
	}
	if !containsFold(md.MissingSkills, "terraform") {
		t.Fatalf("expected missing_skills to contain terraform, got %v", md.MissingSkills)
	}

	ranked := postJSON(t, app, "/api/v1/jobs/"+jobID.String()+"/rank", map[string]any{
		"job": map[string]any{
			"title":           jobBody["title"],
			"description":     jobBody["description"],
			"required_skills": jobBody["required_skills"],
		},
		"resumes": []map[string]any{
			{"student_id": studentID.String(), "resume_text": integrationResume},
		},
	})
	var rd rankData
	if err := json.Unmarshal(ranked.Data, &rd); err != nil {
		t.Fatalf("decode rank data: %v", err)
	}
	if len(rd.Results) != 1 {
		t.Fatalf("expected 1 ranked result, got %d", len(rd.Results))
	}
	if rd.Results[0].StudentID != studentID {
		t.Fatalf("ranked student mismatch: %s", rd.Results[0].StudentID)
	}

	// Persisted upserts should surface in the report endpoints.
	listResp := getPath(t, app, "/api/v1/jobs/"+jobID.String()+"/matches")
	var rows []map[string]any
	if err := json.Unmarshal(listResp.Data, &rows); err != nil {
		t.Fatalf("decode report rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 persisted row, got %d", len(rows))
	}

	req := httptest.NewRequest("GET", "/api/v1/jobs/"+jobID.String()+"/matches/export", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("export request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("export status: %d", resp.StatusCode)
	}
	csvBody, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(csvBody), studentID.String()) {
		t.Fatalf("export missing student row")
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("CATALYST_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("CATALYST_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("CATALYST_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("CATALYST_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("CATALYST_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("CATALYST_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set CATALYST_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	r := migration.Runner{Dir: resolveMigrationsDir(t)}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(root, "migrations")

	if st, err := os.Stat(migDir); err != nil || !st.IsDir() {
		t.Fatalf("resolve migrations dir: not found or not a dir: %s", migDir)
	}
	return migDir
}

func newTestFiberApp(t *testing.T, db database.DB) *fiber.App {
	t.Helper()

	logger := log.New(io.Discard, "", 0)

	engine, err := matching.NewEngine(taxonomy.Default(), matching.DefaultConfig(), cache.NewMemory())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	ext := extractor.NewLocal()
	batch := rank.NewBatch(2, 5*time.Second, logger)
	results := repository.NewPostgresMatchResultRepository(db)
	analyses := repository.NewPostgresAnalysisRepository(db)

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())

	routes.NewRegistry(v1.Deps{
		DB:      db,
		Analyze: usecase.NewAnalyzeUsecase(engine, ext, analyses, logger),
		Match:   usecase.NewMatchUsecase(engine, ext, results, logger),
		Rank:    usecase.NewRankUsecase(engine, batch, ext, results, nil, 0, nil, logger),
		Report:  usecase.NewReportUsecase(results, logger),
	}).Register(app)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) semanticResponse {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer resp.Body.Close()

	var out semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response %s: %v", path, err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("request %s: status=%d message=%s", path, resp.StatusCode, out.Message)
	}
	return out
}

func getPath(t *testing.T, app *fiber.App, path string) semanticResponse {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer resp.Body.Close()

	var out semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response %s: %v", path, err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("request %s: status=%d message=%s", path, resp.StatusCode, out.Message)
	}
	return out
}

func cleanupRows(t *testing.T, db database.DB, studentID, jobID uuid.UUID) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.Exec(ctx, `DELETE FROM match_results WHERE student_id = $1 OR job_id = $2`, studentID, jobID); err != nil {
		t.Logf("cleanup match_results: %v", err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM resume_analyses WHERE student_id = $1`, studentID); err != nil {
		t.Logf("cleanup resume_analyses: %v", err)
	}
}

func containsFold(items []string, want string) bool {
	for _, it := range items {
		if strings.EqualFold(it, want) {
			return true
		}
	}
	return false
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
