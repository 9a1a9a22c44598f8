package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-health-api/internal/application/analytics"
	"github.com/jhoicas/stock-health-api/pkg/jwt"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Queries   *analytics.QueryUseCase
	Reports   *analytics.ReportUseCase
	JWTSecret string // vacío: /api sin autenticación (desarrollo local)
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	api := app.Group("/api")

	// Con JWT habilitado todo /api exige token con un rol reconocido.
	authEnabled := deps.JWTSecret != ""
	if authEnabled {
		api.Use(AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin, jwt.RolePlanner, jwt.RoleViewer))
	}
	reportRoles := func(h fiber.Handler) []fiber.Handler {
		if authEnabled {
			return []fiber.Handler{RequireRole(jwt.RoleAdmin, jwt.RolePlanner), h}
		}
		return []fiber.Handler{h}
	}

	analyticsHandler := NewAnalyticsHandler(deps.Queries, log)
	api.Get("/inventory-summary", analyticsHandler.InventorySummary)
	api.Get("/alerts", analyticsHandler.Alerts)
	api.Get("/stock-health", analyticsHandler.StockHealth)
	api.Get("/models", analyticsHandler.Models)
	api.Get("/material-requirements", analyticsHandler.MaterialRequirements)
	api.Get("/inventory/replenishment-list", analyticsHandler.ReplenishmentList)

	capacity := api.Group("/build-capacity")
	capacity.Post("/", analyticsHandler.BuildCapacity)
	capacity.Get("/", analyticsHandler.BuildCapacityAll)
	capacity.Get("/:model", analyticsHandler.BuildCapacityByModel)

	if deps.Reports != nil {
		reportHandler := NewReportHandler(deps.Reports, log)
		api.Get("/reports/stock-health.pdf", reportRoles(reportHandler.StockHealthPDF)...)
	}
}
