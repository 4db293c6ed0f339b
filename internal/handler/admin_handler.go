package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/admitboard/admitboard-api/internal/service"
	"github.com/admitboard/admitboard-api/internal/utils"
)

// AdminHandler exposes destructive administration endpoints.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register wires admin routes.
func (h *AdminHandler) Register(router fiber.Router, mutationLimiter fiber.Handler) {
	if mutationLimiter == nil {
		mutationLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	router.Post("/reset", mutationLimiter, h.reset)
}

func (h *AdminHandler) reset(c *fiber.Ctx) error {
	token := c.Get("X-Reset-Token")

	if err := h.service.Reset(c.Context(), token); err != nil {
		if errors.Is(err, service.ErrResetUnauthorized) {
			return utils.SendError(c, fiber.StatusForbidden, "invalid reset token")
		}
		h.logger.Error().Err(err).Msg("schema reset failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "schema reset failed")
	}

	return utils.SendSuccess(c, "schema reset", nil)
}
