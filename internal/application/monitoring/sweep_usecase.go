// Package monitoring contiene el barrido periódico de alertas: toma un snapshot, genera
// alertas y capacidad de todos los modelos y entrega el reporte a un Notifier.
package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/inventory"
	"github.com/jhoicas/stock-health-api/internal/domain/repository"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

// CapacityWarning modelo cuya capacidad de ensamble quedó bajo el umbral.
type CapacityWarning struct {
	ScooterModel string
	MaxUnits     int64
	Bottlenecks  []string // part_id de los cuellos de botella
}

// ModelFailure modelo cuya capacidad no se pudo calcular (p. ej. material ausente).
type ModelFailure struct {
	ScooterModel string
	Err          error
}

// SweepReport resultado de un barrido.
type SweepReport struct {
	RunID           string
	SnapshotVersion string
	StartedAt       time.Time
	FinishedAt      time.Time
	Alerts          []entity.Alert
	BySeverity      map[entity.Severity]int
	LowCapacity     []CapacityWarning
	Failed          []ModelFailure
}

// HasFindings indica si el barrido encontró algo que notificar.
func (r *SweepReport) HasFindings() bool {
	return len(r.Alerts) > 0 || len(r.LowCapacity) > 0 || len(r.Failed) > 0
}

// SweepUseCase ejecuta el barrido. Seguro para invocarse desde el scheduler.
type SweepUseCase struct {
	snapshots repository.SnapshotRepository
	notifier  Notifier
	threshold int64
	log       *logger.Logger
	now       func() time.Time
}

// NewSweepUseCase construye el barrido. threshold: modelos con max_units < threshold
// se reportan en LowCapacity.
func NewSweepUseCase(
	snapshots repository.SnapshotRepository,
	notifier Notifier,
	threshold int64,
	log *logger.Logger,
) *SweepUseCase {
	return &SweepUseCase{
		snapshots: snapshots,
		notifier:  notifier,
		threshold: threshold,
		log:       log.Component("sweep"),
		now:       time.Now,
	}
}

// Run ejecuta un barrido completo y notifica el reporte.
// Un material mal configurado aborta el barrido; un modelo con BOM roto se reporta en
// Failed y el resto de modelos sigue. No hay reintentos dentro de la misma ejecución.
func (uc *SweepUseCase) Run(ctx context.Context) (*SweepReport, error) {
	report := &SweepReport{
		RunID:     uuid.NewString(),
		StartedAt: uc.now(),
	}
	log := uc.log.With().Str("run_id", report.RunID).Logger()

	snap, err := repository.LoadSnapshot(ctx, uc.snapshots)
	if err != nil {
		log.Error().Err(err).Msg("barrido: snapshot no disponible o inconsistente")
		return nil, err
	}
	report.SnapshotVersion = snap.Version

	alerts, err := inventory.GenerateAlerts(snap.Materials)
	if err != nil {
		log.Error().Err(err).Msg("barrido: clasificación fallida")
		return nil, err
	}
	report.Alerts = alerts.Alerts
	report.BySeverity = alerts.BySeverity

	idx := snap.MaterialIndex()
	for _, model := range snap.Models() {
		res, err := inventory.BuildCapacity(model, snap.BOM, idx)
		if err != nil {
			log.Warn().Err(err).Str("model", model).Msg("barrido: capacidad no calculada")
			report.Failed = append(report.Failed, ModelFailure{ScooterModel: model, Err: err})
			continue
		}
		if res.MaxUnits < uc.threshold {
			warning := CapacityWarning{ScooterModel: model, MaxUnits: res.MaxUnits}
			for _, b := range res.BottleneckMaterials {
				warning.Bottlenecks = append(warning.Bottlenecks, b.PartID)
			}
			report.LowCapacity = append(report.LowCapacity, warning)
		}
	}
	report.FinishedAt = uc.now()

	log.Info().
		Str("snapshot", report.SnapshotVersion).
		Int("alerts", len(report.Alerts)).
		Int("low_capacity", len(report.LowCapacity)).
		Int("failed_models", len(report.Failed)).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("barrido terminado")

	if uc.notifier != nil {
		if err := uc.notifier.Notify(ctx, report); err != nil {
			log.Error().Err(err).Msg("barrido: notificación fallida")
			return report, fmt.Errorf("notificar barrido: %w", err)
		}
	}
	return report, nil
}
