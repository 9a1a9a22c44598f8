package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

// writeError traduce errores de dominio a status HTTP + dto.ErrorResponse.
// Los errores no clasificados se registran y se responden como 500 sin detalles internos.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var (
		cfgErr     *domain.ConfigurationError
		unknownErr *domain.UnknownModelError
		missingErr *domain.MissingMaterialError
	)
	switch {
	case errors.As(err, &cfgErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CONFIGURATION_ERROR", Message: cfgErr.Error()})
	case errors.As(err, &unknownErr):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_MODEL", Message: unknownErr.Error()})
	case errors.As(err, &missingErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MISSING_MATERIAL", Message: missingErr.Error()})
	case errors.Is(err, domain.ErrSnapshotUnavailable):
		log.Error().Err(err).Str("path", c.Path()).Msg("snapshot no disponible")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SNAPSHOT_UNAVAILABLE", Message: "el inventario no está disponible, intente más tarde"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
