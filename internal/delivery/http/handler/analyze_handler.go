package handler

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/dto"
	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/middleware"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/extractor"
	"github.com/sriraghavi22/career-catalyst-project/internal/pkg/response"
	"github.com/sriraghavi22/career-catalyst-project/internal/usecase"
)

const maxUploadBytes = 10 << 20

type AnalyzeHandler struct {
	uc usecase.AnalyzeUsecase
}

type analyzeRequest struct {
	StudentID  string `json:"student_id"`
	ResumeText string `json:"resume_text"`
	TargetRole string `json:"target_role"`
}

func NewAnalyzeHandler(uc usecase.AnalyzeUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

func (h *AnalyzeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analyze", h.Analyze)
}

// Analyze accepts either a multipart upload (field "resume") or a JSON body
// with raw resume text.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var (
		input      usecase.ResumeInput
		targetRole string
	)

	if fh, err := c.FormFile("resume"); err == nil && fh != nil {
		studentID, err := uuid.Parse(strings.TrimSpace(c.FormValue("student_id")))
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		data, mime, err := readUpload(fh)
		if err != nil {
			return err
		}
		input = usecase.ResumeInput{StudentID: studentID, FileData: data, FileMime: mime}
		targetRole = c.FormValue("target_role")
	} else {
		var req analyzeRequest
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		studentID, err := uuid.Parse(strings.TrimSpace(req.StudentID))
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		input = usecase.ResumeInput{StudentID: studentID, RawText: req.ResumeText}
		targetRole = req.TargetRole
	}

	analysis, err := h.uc.AnalyzeResume(c.Context(), usecase.AnalyzeParams{Resume: input, TargetRole: targetRole})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAnalysisResponse(analysis))
}

func readUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	if fh.Size > maxUploadBytes {
		return nil, "", middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, "", middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if len(data) > maxUploadBytes {
		return nil, "", middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil, nil)
	}

	return data, uploadMime(fh), nil
}

// uploadMime trusts the filename extension over the client-sent header;
// browsers are inconsistent about DOCX content types.
func uploadMime(fh *multipart.FileHeader) string {
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".pdf":
		return extractor.MimePDF
	case ".docx":
		return extractor.MimeDocx
	case ".txt":
		return extractor.MimePlain
	}
	return fh.Header.Get("Content-Type")
}
