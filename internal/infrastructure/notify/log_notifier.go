// Package notify implementa los Notifier del barrido de alertas.
package notify

import (
	"context"

	"github.com/jhoicas/stock-health-api/internal/application/monitoring"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

var _ monitoring.Notifier = (*LogNotifier)(nil)

// LogNotifier escribe el reporte del barrido en el log estructurado: un resumen y una
// línea por alerta crítica o alta, por modelo con baja capacidad y por modelo fallido.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Component("notifier")}
}

// Notify nunca falla: el log es el canal de último recurso.
func (n *LogNotifier) Notify(_ context.Context, r *monitoring.SweepReport) error {
	if !r.HasFindings() {
		n.log.Info().Str("run_id", r.RunID).Str("snapshot", r.SnapshotVersion).Msg("inventario sin novedades")
		return nil
	}

	n.log.Warn().
		Str("run_id", r.RunID).
		Str("snapshot", r.SnapshotVersion).
		Int("critical", r.BySeverity[entity.SeverityCritical]).
		Int("high", r.BySeverity[entity.SeverityHigh]).
		Int("medium", r.BySeverity[entity.SeverityMedium]).
		Int("low_capacity", len(r.LowCapacity)).
		Int("failed_models", len(r.Failed)).
		Msg("alertas de inventario")

	for _, a := range r.Alerts {
		if a.Severity.Weight() < entity.SeverityHigh.Weight() {
			continue
		}
		n.log.Warn().
			Str("run_id", r.RunID).
			Str("severity", string(a.Severity)).
			Str("part_id", a.PartID).
			Int64("current_stock", a.CurrentStock).
			Int64("reorder_point", a.ReorderPoint).
			Msg(a.Message)
	}
	for _, c := range r.LowCapacity {
		n.log.Warn().
			Str("run_id", r.RunID).
			Str("model", c.ScooterModel).
			Int64("max_units", c.MaxUnits).
			Strs("bottlenecks", c.Bottlenecks).
			Msg("capacidad de ensamble baja")
	}
	for _, f := range r.Failed {
		n.log.Error().
			Str("run_id", r.RunID).
			Str("model", f.ScooterModel).
			Err(f.Err).
			Msg("capacidad no calculada")
	}
	return nil
}
