package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sriraghavi22/career-catalyst-project/internal/database"
	"github.com/sriraghavi22/career-catalyst-project/internal/pkg/response"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/healthz", h.Healthz)
}

func (h *HealthHandler) Healthz(c fiber.Ctx) error {
	data := map[string]string{"database": "ok"}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			data["database"] = "unreachable"
			return response.Error(c, fiber.StatusServiceUnavailable, "degraded", data)
		}
	} else {
		data["database"] = "disabled"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
