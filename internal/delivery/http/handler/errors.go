package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/sriraghavi22/career-catalyst-project/internal/delivery/http/middleware"
	"github.com/sriraghavi22/career-catalyst-project/internal/pkg/response"
	"github.com/sriraghavi22/career-catalyst-project/internal/usecase"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrResumeEmpty):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Resume text empty or too short", nil, err)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "Unsupported file type", nil, err)
	case errors.Is(err, usecase.ErrPersistenceDisabled):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Persistence disabled", nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
