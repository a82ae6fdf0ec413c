package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/middleware"
	"github.com/sriraghavi22/career-catalyst-project/internal/pkg/response"
	"github.com/sriraghavi22/career-catalyst-project/internal/usecase"
)

type ReportHandler struct {
	uc usecase.ReportUsecase
}

type jobMatchRowResponse struct {
	StudentID       uuid.UUID `json:"student_id"`
	MatchScore      float64   `json:"match_score"`
	SimilarityScore float64   `json:"similarity_score"`
	KeywordScore    float64   `json:"keyword_score"`
	ExperienceScore float64   `json:"experience_score"`
	ComputedAt      string    `json:"computed_at"`
}

func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:job_id/matches", h.ListMatches)
	r.Get("/:job_id/matches/export", h.ExportMatches)
}

func (h *ReportHandler) ListMatches(c fiber.Ctx) error {
	jobID, limit, err := reportParams(c)
	if err != nil {
		return err
	}

	rows, err := h.uc.ListJobMatches(c.Context(), jobID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]jobMatchRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, jobMatchRowResponse{
			StudentID:       row.StudentID,
			MatchScore:      row.MatchScore,
			SimilarityScore: row.SimilarityScore,
			KeywordScore:    row.KeywordScore,
			ExperienceScore: row.ExperienceScore,
			ComputedAt:      row.ComputedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ReportHandler) ExportMatches(c fiber.Ctx) error {
	jobID, limit, err := reportParams(c)
	if err != nil {
		return err
	}

	rows, err := h.uc.ListJobMatches(c.Context(), jobID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"student_id", "match_score", "similarity_score", "keyword_score", "experience_score", "computed_at"})
	for _, row := range rows {
		_ = w.Write([]string{
			row.StudentID.String(),
			strconv.FormatFloat(row.MatchScore, 'f', 2, 64),
			strconv.FormatFloat(row.SimilarityScore, 'f', 2, 64),
			strconv.FormatFloat(row.KeywordScore, 'f', 2, 64),
			strconv.FormatFloat(row.ExperienceScore, 'f', 2, 64),
			row.ComputedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="matches-`+jobID.String()+`.csv"`)
	return c.Send(buf.Bytes())
}

func reportParams(c fiber.Ctx) (uuid.UUID, int, error) {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return uuid.Nil, 0, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return uuid.Nil, 0, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}
	return jobID, limit, nil
}
