package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `part_id, part_name, category, current_stock, reorder_point, unit_price, updated_at`

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create inserta un material nuevo.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (part_id, part_name, category, current_stock, reorder_point, unit_price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		m.PartID, m.PartName, m.Category, m.CurrentStock, m.ReorderPoint, m.UnitPrice,
	).Scan(&m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("material %s: %w", m.PartID, domain.ErrDuplicate)
		}
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// Upsert inserta o reemplaza el material por part_id.
func (r *MaterialRepo) Upsert(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (part_id, part_name, category, current_stock, reorder_point, unit_price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (part_id) DO UPDATE SET
			part_name = EXCLUDED.part_name,
			category = EXCLUDED.category,
			current_stock = EXCLUDED.current_stock,
			reorder_point = EXCLUDED.reorder_point,
			unit_price = EXCLUDED.unit_price,
			updated_at = now()
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		m.PartID, m.PartName, m.Category, m.CurrentStock, m.ReorderPoint, m.UnitPrice,
	).Scan(&m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert material: %w", err)
	}
	return nil
}

// GetByPartID devuelve domain.ErrNotFound si no existe.
func (r *MaterialRepo) GetByPartID(ctx context.Context, partID string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE part_id = $1`
	m, err := scanMaterial(r.q.QueryRow(ctx, query, partID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("material %s: %w", partID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// ListAll lista todos los materiales ordenados por part_id.
func (r *MaterialRepo) ListAll(ctx context.Context) ([]entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY part_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	list := make([]entity.Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return list, nil
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(&m.PartID, &m.PartName, &m.Category, &m.CurrentStock, &m.ReorderPoint, &m.UnitPrice, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
