package repository

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// SnapshotRepository entrega una vista consistente de materiales y BOM.
// Materiales y BOM de un mismo Snapshot corresponden al mismo instante.
type SnapshotRepository interface {
	Current(ctx context.Context) (*entity.Snapshot, error)
}

// LoadSnapshot obtiene el snapshot vigente y revisa su integridad.
//
// Errores: domain.ErrSnapshotUnavailable si la fuente falla, domain.ErrInvalidInput si
// el snapshot trae datos inconsistentes.
func LoadSnapshot(ctx context.Context, r SnapshotRepository) (*entity.Snapshot, error) {
	snap, err := r.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshotUnavailable, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: snapshot %s: %w", domain.ErrInvalidInput, snap.Version, err)
	}
	return snap, nil
}
