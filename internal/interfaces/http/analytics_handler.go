package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-health-api/internal/application/analytics"
	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

// AnalyticsHandler expone las consultas del motor de salud de inventario.
type AnalyticsHandler struct {
	uc  *analytics.QueryUseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.QueryUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// InventorySummary godoc
// @Summary      Resumen de inventario
// @Description  Valor total del stock, conteos de stock bajo y agotado, desglose por categoría.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory-summary [get]
func (h *AnalyticsHandler) InventorySummary(c *fiber.Ctx) error {
	out, err := h.uc.InventorySummary(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de stock bajo
// @Description  Una alerta por material LOW, CRITICAL u OUT_OF_STOCK, de mayor a menor severidad.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertsDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AnalyticsHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// StockHealth godoc
// @Summary      Salud de stock por material
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máx. materiales (0 = todos, max 500)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.StockHealthDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock-health [get]
func (h *AnalyticsHandler) StockHealth(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.uc.StockHealth(c.Context(), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// BuildCapacity godoc
// @Summary      Capacidad de fabricación de un modelo
// @Description  Unidades máximas fabricables con el stock actual y materiales cuello de botella.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuildCapacityRequest  true  "scooter_model"
// @Success      200  {object}  dto.BuildCapacityDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/build-capacity [post]
func (h *AnalyticsHandler) BuildCapacity(c *fiber.Ctx) error {
	var in dto.BuildCapacityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.buildCapacity(c, in.ScooterModel)
}

// BuildCapacityByModel godoc
// @Summary      Capacidad de fabricación de un modelo (por path)
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        model  path  string  true  "Modelo de scooter"
// @Success      200  {object}  dto.BuildCapacityDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/build-capacity/{model} [get]
func (h *AnalyticsHandler) BuildCapacityByModel(c *fiber.Ctx) error {
	return h.buildCapacity(c, c.Params("model"))
}

func (h *AnalyticsHandler) buildCapacity(c *fiber.Ctx, model string) error {
	out, err := h.uc.BuildCapacity(c.Context(), model)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// BuildCapacityAll godoc
// @Summary      Capacidad de fabricación de todos los modelos
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BuildCapacityAllDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/build-capacity [get]
func (h *AnalyticsHandler) BuildCapacityAll(c *fiber.Ctx) error {
	out, err := h.uc.BuildCapacityAll(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Models godoc
// @Summary      Modelos con lista de materiales
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ModelsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/models [get]
func (h *AnalyticsHandler) Models(c *fiber.Ctx) error {
	out, err := h.uc.Models(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// MaterialRequirements godoc
// @Summary      Materiales necesarios para fabricar N unidades
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        scooter_model  query  string  true  "Modelo de scooter"
// @Param        quantity       query  int     true  "Unidades a fabricar (> 0)"
// @Success      200  {object}  dto.MaterialRequirementsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/material-requirements [get]
func (h *AnalyticsHandler) MaterialRequirements(c *fiber.Ctx) error {
	var req dto.MaterialRequirementsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.uc.MaterialRequirements(c.Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Materiales bajo el nivel ADEQUATE con la cantidad sugerida de pedido,
//
//	del más urgente al menos urgente.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment-list [get]
func (h *AnalyticsHandler) ReplenishmentList(c *fiber.Ctx) error {
	list, err := h.uc.Replenishment(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
