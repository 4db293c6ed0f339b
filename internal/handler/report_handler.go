package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/admitboard/admitboard-api/internal/service"
	"github.com/admitboard/admitboard-api/internal/utils"
)

// ReportHandler exposes the fixed report catalog.
type ReportHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler constructs the handler.
func NewReportHandler(service service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With().Str("component", "report_handler").Logger(),
	}
}

// Register wires report routes.
func (h *ReportHandler) Register(router fiber.Router) {
	router.Get("", h.index)
	router.Get("/:key", h.run)
}

func (h *ReportHandler) index(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "reports listed", h.service.Describe())
}

func (h *ReportHandler) run(c *fiber.Ctx) error {
	key := c.Params("key")

	rows, err := h.service.Run(c.Context(), key)
	if err != nil {
		status, message := mapServiceError(err)
		if message == "" {
			h.logger.Error().Err(err).Str("report", key).Msg("report execution failed")
			message = "report execution failed"
		}
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "report executed", rows)
}
