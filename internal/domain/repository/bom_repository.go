package repository

import (
	"context"

	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// BOMRepository define el puerto de persistencia para las líneas de BOM.
type BOMRepository interface {
	// Add agrega una línea. Si (scooter_model, part_id) ya existe, suma required_per_unit.
	Add(ctx context.Context, e *entity.BOMEntry) error
	// DeleteByModel elimina todas las líneas del modelo (recarga de BOM).
	DeleteByModel(ctx context.Context, scooterModel string) (int64, error)
	// ListByModel lo usa la importación estricta para detectar modelos ya cargados.
	ListByModel(ctx context.Context, scooterModel string) ([]entity.BOMEntry, error)
	ListAll(ctx context.Context) ([]entity.BOMEntry, error)
}
