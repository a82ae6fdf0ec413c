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

type MatchHandler struct {
	uc usecase.MatchUsecase
}

type jobRequest struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

type matchRequest struct {
	StudentID  string     `json:"student_id"`
	ResumeText string     `json:"resume_text"`
	Job        jobRequest `json:"job"`
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/score", h.Score)
}

func (h *MatchHandler) Score(c fiber.Ctx) error {
	var req matchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	studentID, err := uuid.Parse(strings.TrimSpace(req.StudentID))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := uuid.Parse(strings.TrimSpace(req.Job.JobID))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.ScoreMatch(c.Context(), usecase.MatchParams{
		Resume: usecase.ResumeInput{StudentID: studentID, RawText: req.ResumeText},
		Job: usecase.JobInput{
			JobID:          jobID,
			Title:          req.Job.Title,
			Description:    req.Job.Description,
			RequiredSkills: req.Job.RequiredSkills,
		},
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponse(res))
}
