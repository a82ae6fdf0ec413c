package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/dto"
	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/middleware"
	"github.com/sriraghavi22/career-catalyst-project/internal/pkg/response"
	"github.com/sriraghavi22/career-catalyst-project/internal/usecase"
)

type RankHandler struct {
	uc usecase.RankUsecase
}

type rankResumeRequest struct {
	StudentID  string `json:"student_id"`
	ResumeText string `json:"resume_text"`
}

type rankRequest struct {
	Job       jobRequest          `json:"job"`
	Resumes   []rankResumeRequest `json:"resumes"`
	TopN      int                 `json:"top_n"`
	Ascending bool                `json:"ascending"`
}

func NewRankHandler(uc usecase.RankUsecase) *RankHandler {
	return &RankHandler{uc: uc}
}

func (h *RankHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:job_id/rank", h.Rank)
}

func (h *RankHandler) Rank(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req rankRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	resumes := make([]usecase.ResumeInput, 0, len(req.Resumes))
	for _, r := range req.Resumes {
		studentID, err := uuid.Parse(strings.TrimSpace(r.StudentID))
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		resumes = append(resumes, usecase.ResumeInput{StudentID: studentID, RawText: r.ResumeText})
	}

	out, err := h.uc.RankCandidates(c.Context(), usecase.RankParams{
		Job: usecase.JobInput{
			JobID:          jobID,
			Title:          req.Job.Title,
			Description:    req.Job.Description,
			RequiredSkills: req.Job.RequiredSkills,
		},
		Resumes:   resumes,
		TopN:      req.TopN,
		Ascending: req.Ascending,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRankResponse(out))
}
