package repository

import (
	"context"

	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
// El motor solo lee materiales; Create/Upsert los usa la importación (Create en modo estricto).
type MaterialRepository interface {
	// Create inserta el material. Devuelve domain.ErrDuplicate si el part_id ya existe.
	Create(ctx context.Context, m *entity.Material) error
	Upsert(ctx context.Context, m *entity.Material) error
	GetByPartID(ctx context.Context, partID string) (*entity.Material, error)
	ListAll(ctx context.Context) ([]entity.Material, error)
}
