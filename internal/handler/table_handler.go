package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/admitboard/admitboard-api/internal/dto"
	"github.com/admitboard/admitboard-api/internal/service"
	"github.com/admitboard/admitboard-api/internal/utils"
)

// TableHandler exposes the allow-listed table endpoints.
type TableHandler struct {
	service service.TableService
	logger  zerolog.Logger
}

// NewTableHandler constructs the handler.
func NewTableHandler(service service.TableService, logger zerolog.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		logger:  logger.With().Str("component", "table_handler").Logger(),
	}
}

// Register wires table routes. The mutation limiter, when provided, guards
// the write endpoints only so UI polling of lists stays unthrottled.
func (h *TableHandler) Register(router fiber.Router, mutationLimiter fiber.Handler) {
	if mutationLimiter == nil {
		mutationLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	router.Get("", h.index)
	router.Get("/:table", h.list)
	router.Post("/:table", mutationLimiter, h.insert)
	router.Delete("/:table/:id", mutationLimiter, h.remove)
}

func (h *TableHandler) index(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "tables listed", h.service.Describe())
}

func (h *TableHandler) list(c *fiber.Ctx) error {
	rows, err := h.service.List(c.Context(), c.Params("table"))
	if err != nil {
		return h.fail(c, err, "failed to list table")
	}

	return utils.SendSuccess(c, "rows retrieved", rows)
}

func (h *TableHandler) insert(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.Insert(c.Context(), c.Params("table"), fields)
	if err != nil {
		return h.fail(c, err, "failed to insert row")
	}

	return utils.SendSuccess(c, "row inserted", dto.InsertResponse{ID: id})
}

func (h *TableHandler) remove(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid row id")
	}

	if err := h.service.Delete(c.Context(), c.Params("table"), id); err != nil {
		return h.fail(c, err, "failed to delete row")
	}

	return utils.SendSuccess(c, "row deleted", nil)
}

func (h *TableHandler) fail(c *fiber.Ctx, err error, fallback string) error {
	status, message := mapServiceError(err)
	if message == "" {
		h.logger.Error().Err(err).Str("table", c.Params("table")).Msg(fallback)
		message = fallback
	}
	return utils.SendError(c, status, message)
}
