package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación de BOMRepository sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// Add inserta la línea; una segunda línea para el mismo (modelo, part_id) suma cantidades.
func (r *BOMRepo) Add(ctx context.Context, e *entity.BOMEntry) error {
	query := `
		INSERT INTO bom_entries (scooter_model, part_id, required_per_unit)
		VALUES ($1, $2, $3)
		ON CONFLICT (scooter_model, part_id)
		DO UPDATE SET required_per_unit = bom_entries.required_per_unit + EXCLUDED.required_per_unit`
	if _, err := r.q.Exec(ctx, query, e.ScooterModel, e.PartID, e.RequiredPerUnit); err != nil {
		return fmt.Errorf("add bom entry: %w", err)
	}
	return nil
}

// DeleteByModel borra el BOM completo de un modelo y devuelve cuántas líneas eliminó.
func (r *BOMRepo) DeleteByModel(ctx context.Context, scooterModel string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM bom_entries WHERE scooter_model = $1`, scooterModel)
	if err != nil {
		return 0, fmt.Errorf("delete bom: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByModel líneas del modelo ordenadas por part_id.
func (r *BOMRepo) ListByModel(ctx context.Context, scooterModel string) ([]entity.BOMEntry, error) {
	query := `
		SELECT scooter_model, part_id, required_per_unit
		FROM bom_entries WHERE scooter_model = $1 ORDER BY part_id`
	rows, err := r.q.Query(ctx, query, scooterModel)
	if err != nil {
		return nil, fmt.Errorf("list bom: %w", err)
	}
	return collectBOM(rows)
}

// ListAll todas las líneas ordenadas por modelo y part_id.
func (r *BOMRepo) ListAll(ctx context.Context) ([]entity.BOMEntry, error) {
	query := `
		SELECT scooter_model, part_id, required_per_unit
		FROM bom_entries ORDER BY scooter_model, part_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bom: %w", err)
	}
	return collectBOM(rows)
}

func collectBOM(rows pgx.Rows) ([]entity.BOMEntry, error) {
	defer rows.Close()
	list := make([]entity.BOMEntry, 0)
	for rows.Next() {
		var e entity.BOMEntry
		if err := rows.Scan(&e.ScooterModel, &e.PartID, &e.RequiredPerUnit); err != nil {
			return nil, fmt.Errorf("scan bom entry: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bom: %w", err)
	}
	return list, nil
}
