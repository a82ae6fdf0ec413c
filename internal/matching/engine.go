package matching

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/job"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
	"github.com/sriraghavi22/career-catalyst-project/internal/domain/resume"
	"github.com/sriraghavi22/career-catalyst-project/internal/extract"
	"github.com/sriraghavi22/career-catalyst-project/internal/taxonomy"
	"github.com/sriraghavi22/career-catalyst-project/internal/text"
	"github.com/sriraghavi22/career-catalyst-project/internal/vector"
)

// VectorCache caches job term profiles keyed by job id + description hash.
// It is a performance optimization only: a miss, or no cache at all, never
// changes a score. Implementations must be safe for concurrent readers with
// first-writer-wins semantics per key.
type VectorCache interface {
	Get(key string) (vector.TermCounts, bool)
	Set(key string, tc vector.TermCounts)
}

// Engine scores (resume, job) pairs. It holds only immutable configuration
// and the optional job-vector cache, so one engine serves any number of
// concurrent callers.
type Engine struct {
	tax   *taxonomy.Taxonomy
	cfg   Config
	cache VectorCache
	now   func() time.Time
}

func NewEngine(tax *taxonomy.Taxonomy, cfg Config, cache VectorCache) (*Engine, error) {
	if tax == nil {
		return nil, fmt.Errorf("nil taxonomy")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	return &Engine{tax: tax, cfg: cfg, cache: cache, now: time.Now}, nil
}

// WithClock fixes the engine's reference time. Recency weighting and result
// timestamps derive from it; production engines keep the wall clock.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Taxonomy exposes the engine's shared read-only skill table.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// Config exposes the engine's immutable tunables.
func (e *Engine) Config() Config {
	return e.cfg
}

// ScoreMatch computes the full match result for one pair. Failures surface
// as errors, never as a zero score: a caller can always tell "poor match"
// from "could not be scored".
func (e *Engine) ScoreMatch(doc resume.Document, posting job.Posting) (match.Result, error) {
	if doc.NormalizedText == "" {
		return match.Result{}, fmt.Errorf("resume %s: %w", doc.ID, text.ErrExtractionEmpty)
	}
	if posting.NormalizedText == "" {
		return match.Result{}, fmt.Errorf("job %s: %w", posting.ID, text.ErrExtractionEmpty)
	}

	jobCounts := e.jobTermCounts(posting)
	resumeCounts := vector.CountTerms(doc.NormalizedText)

	vocab := vector.NewVocabularyFromCounts(resumeCounts, jobCounts)
	similarity, err := vector.SimilarityScore(vocab.FromCounts(resumeCounts), vocab.FromCounts(jobCounts))
	if err != nil {
		return match.Result{}, fmt.Errorf("similarity: %w", err)
	}

	keyword, matched, missing := KeywordScore(doc.Skills, posting.RequiredSkills, e.tax)
	now := e.now().UTC()
	experience := ExperienceScore(doc.Experience, posting, e.cfg, now)

	return match.Result{
		StudentID:       doc.ID,
		JobID:           posting.ID,
		MatchScore:      MatchScore(e.cfg.Weights, similarity, keyword, experience),
		SimilarityScore: similarity,
		KeywordScore:    keyword,
		ExperienceScore: experience,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ComputedAt:      now,
	}, nil
}

// AnalyzeResume produces the student-facing, job-agnostic report: ATS and
// resume scores plus the narrative breakdown the report generator renders.
func (e *Engine) AnalyzeResume(doc resume.Document, targetRole string) (match.Analysis, error) {
	if doc.NormalizedText == "" {
		return match.Analysis{}, fmt.Errorf("resume %s: %w", doc.ID, text.ErrExtractionEmpty)
	}

	ats := ATSScore(doc)

	target := job.Posting{Title: targetRole, Seniority: extract.Seniority(targetRole, "")}
	now := e.now().UTC()
	experience := ExperienceScore(doc.Experience, target, e.cfg, now)

	breadth := len(doc.Skills)
	analysis := match.Analysis{
		StudentID:       doc.ID,
		ResumeScore:     ResumeScore(e.cfg, ats.Score, experience, breadth),
		ATSScore:        ats.Score,
		ExperienceScore: experience,
		SkillBreadth:    breadth,
		Sections:        sectionAssessments(doc),
		ComputedAt:      now,
	}
	analysis.Strengths, analysis.ImprovementAreas = narrative(doc, ats, experience)
	return analysis, nil
}

func (e *Engine) jobTermCounts(posting job.Posting) vector.TermCounts {
	if e.cache == nil {
		return vector.CountTerms(posting.NormalizedText)
	}
	key := JobVectorKey(posting)
	if tc, ok := e.cache.Get(key); ok {
		return tc
	}
	tc := vector.CountTerms(posting.NormalizedText)
	e.cache.Set(key, tc)
	return tc
}

// JobVectorKey keys the job-vector cache by job id plus description hash, so
// an edited posting never serves a stale profile.
func JobVectorKey(posting job.Posting) string {
	sum := sha256.Sum256([]byte(posting.NormalizedText))
	return posting.ID.String() + ":" + hex.EncodeToString(sum[:8])
}

func sectionAssessments(doc resume.Document) []match.SectionAssessment {
	out := make([]match.SectionAssessment, 0, len(text.KnownSections))
	for _, sec := range text.KnownSections {
		body := doc.Sections[string(sec)]
		a := match.SectionAssessment{Section: string(sec), Present: body != ""}
		switch {
		case !a.Present && sec == text.SectionUncategorized:
			continue
		case !a.Present:
			a.Comment = "section not found"
		case sec == text.SectionUncategorized:
			a.Comment = "text under unrecognized headings; consider standard section names"
		default:
			a.Comment = "found"
		}
		out = append(out, a)
	}
	return out
}

func narrative(doc resume.Document, ats ATSReport, experience float64) (strengths, improvements []string) {
	strengths = make([]string, 0, 4)
	improvements = make([]string, 0, 4)

	if len(doc.Skills) >= 8 {
		strengths = append(strengths, fmt.Sprintf("broad skill coverage (%d recognized skills)", len(doc.Skills)))
	} else if len(doc.Skills) < 3 {
		improvements = append(improvements, "few recognizable skills; name concrete tools and technologies")
	}

	if experience >= 60 {
		strengths = append(strengths, "substantial recent experience")
	} else if experience == 0 {
		improvements = append(improvements, "no weighable experience; add dated roles (e.g. \"Jan 2022 - Mar 2024\")")
	}

	for _, name := range ats.Passed {
		if name == "contact information" || name == "parseable layout" {
			strengths = append(strengths, name+" in good shape")
		}
	}
	for _, name := range ats.Failed {
		improvements = append(improvements, "improve "+name)
	}

	for _, e := range doc.Experience {
		if e.DateWarning != "" {
			improvements = append(improvements, "fix dates for role \""+e.Role+"\": "+e.DateWarning)
		}
	}
	return strengths, improvements
}
