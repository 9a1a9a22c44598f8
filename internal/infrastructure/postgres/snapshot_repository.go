package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-health-api/internal/application/analytics"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/repository"
)

var (
	_ repository.SnapshotRepository = (*SnapshotRepo)(nil)
	_ analytics.VersionReader       = (*SnapshotRepo)(nil)
)

// snapshotTxOptions: todas las lecturas de un snapshot ven el mismo instante.
var snapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// versionQuery hash del contenido de ambas tablas en orden de clave primaria: cualquier
// cambio de datos (aunque no toque updated_at ni cambie conteos) cambia la versión.
// Recorre todas las filas, pero no las transfiere.
const versionQuery = `
	SELECT md5(
		COALESCE((SELECT string_agg(
			json_build_array(part_id, part_name, category, current_stock, reorder_point, unit_price)::text,
			',' ORDER BY part_id) FROM materials), '')
		|| '#' ||
		COALESCE((SELECT string_agg(
			json_build_array(scooter_model, part_id, required_per_unit)::text,
			',' ORDER BY scooter_model, part_id) FROM bom_entries), '')
	)`

// SnapshotRepo arma snapshots consistentes leyendo materiales y BOM en una transacción
// REPEATABLE READ de solo lectura.
type SnapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository construye la fuente de snapshots PostgreSQL.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// Current lee materiales, BOM y versión dentro de la misma transacción.
func (r *SnapshotRepo) Current(ctx context.Context) (*entity.Snapshot, error) {
	tx, err := r.pool.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return nil, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	version, err := readVersion(ctx, tx)
	if err != nil {
		return nil, err
	}
	materials, err := NewMaterialRepository(tx).ListAll(ctx)
	if err != nil {
		return nil, schemaHint(err)
	}
	bom, err := NewBOMRepository(tx).ListAll(ctx)
	if err != nil {
		return nil, schemaHint(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot tx: %w", err)
	}

	return &entity.Snapshot{
		Version:   version,
		TakenAt:   time.Now().UTC(),
		Materials: materials,
		BOM:       bom,
	}, nil
}

// Version solo calcula el hash en el servidor; no transfiere filas.
func (r *SnapshotRepo) Version(ctx context.Context) (string, error) {
	return readVersion(ctx, r.pool)
}

func readVersion(ctx context.Context, q Querier) (string, error) {
	var sum string
	if err := q.QueryRow(ctx, versionQuery).Scan(&sum); err != nil {
		return "", schemaHint(fmt.Errorf("snapshot version: %w", err))
	}
	return "pg-" + sum[:16], nil
}

func schemaHint(err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%w (¿falta aplicar migrations/001_materials_bom.sql?)", err)
	}
	return err
}
