package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-health-api/internal/application/analytics"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

// ReportHandler descarga de reportes PDF.
type ReportHandler struct {
	uc  *analytics.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// StockHealthPDF godoc
// @Summary      Reporte PDF de salud de inventario
// @Description  Resumen, estados, alertas y reposición sugerida de un mismo snapshot. Roles: admin, planner.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-health.pdf [get]
func (h *ReportHandler) StockHealthPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadStockHealthPDF(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
