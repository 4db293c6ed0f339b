package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/admitboard/admitboard-api/internal/service"
	"github.com/admitboard/admitboard-api/internal/store"
)

// mapServiceError translates the error taxonomy into an HTTP status and a
// client-facing message: unknown keys are 404, malformed payloads 400,
// schema constraint rejections 409. An empty message means the caller
// should log the error and answer with its own generic 500 text.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrTableNotFound):
		return fiber.StatusNotFound, "table not found"
	case errors.Is(err, service.ErrReportNotFound):
		return fiber.StatusNotFound, "report not found"
	case errors.Is(err, service.ErrEmptyInsert):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrUnknownColumn):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrConstraintViolation):
		return fiber.StatusConflict, err.Error()
	default:
		return fiber.StatusInternalServerError, ""
	}
}

func parseID(c *fiber.Ctx, key string) (int64, error) {
	raw := strings.TrimSpace(c.Params(key))
	return strconv.ParseInt(raw, 10, 64)
}
