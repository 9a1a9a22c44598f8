package postgres_test

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-health-api/internal/application/inventory"
	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-health-api/pkg/config"
)

// testPool abre un esquema propio, migrado, sobre TEST_DATABASE_URL. Sin la variable el
// test se omite.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()

	admin, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	schema := "stock_health_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		admin.Close()
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: u.String()})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ddl, err := os.ReadFile(filepath.Join("migrations", "001_materials_bom.sql"))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(ddl))
	require.NoError(t, err)
	return pool
}

func seed(t *testing.T, pool *pgxpool.Pool, snap *entity.Snapshot, opts inventory.ImportOptions) {
	t.Helper()
	_, err := inventory.NewImportUseCase(postgres.NewTxRunner(pool), nil).Import(context.Background(), snap, opts)
	require.NoError(t, err)
}

func material(partID string, stock, rp int64) entity.Material {
	return entity.Material{PartID: partID, PartName: partID, Category: "Assembly", CurrentStock: stock, ReorderPoint: rp, UnitPrice: decimal.RequireFromString("1.5")}
}

func TestSnapshotRepo_VersionCambiaConIntercambioDeBOM(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewSnapshotRepository(pool)

	seed(t, pool, &entity.Snapshot{
		Materials: []entity.Material{material("partA", 10, 5), material("partB", 9, 5)},
		BOM: []entity.BOMEntry{
			{ScooterModel: "S1", PartID: "partA", RequiredPerUnit: 2},
			{ScooterModel: "S1", PartID: "partB", RequiredPerUnit: 3},
		},
	}, inventory.ImportOptions{})

	before, err := repo.Version(ctx)
	require.NoError(t, err)
	snap, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, snap.Version, "Current y Version coinciden")

	// Mismas cantidades de líneas y misma suma; solo cambia el reparto.
	seed(t, pool, &entity.Snapshot{
		BOM: []entity.BOMEntry{
			{ScooterModel: "S1", PartID: "partA", RequiredPerUnit: 3},
			{ScooterModel: "S1", PartID: "partB", RequiredPerUnit: 2},
		},
	}, inventory.ImportOptions{ReplaceBOM: true})

	after, err := repo.Version(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestSnapshotRepo_VersionCambiaConUpdateExterno(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewSnapshotRepository(pool)

	seed(t, pool, &entity.Snapshot{
		Materials: []entity.Material{material("partA", 10, 5)},
		BOM:       []entity.BOMEntry{{ScooterModel: "S1", PartID: "partA", RequiredPerUnit: 1}},
	}, inventory.ImportOptions{})
	before, err := repo.Version(ctx)
	require.NoError(t, err)

	// Un escritor externo que no toca updated_at.
	_, err = pool.Exec(ctx, `UPDATE materials SET current_stock = 4 WHERE part_id = 'partA'`)
	require.NoError(t, err)

	after, err := repo.Version(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	snap, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.Materials[0].CurrentStock)
}

// Reimportar los mismos datos no invalida la caché aunque updated_at cambie.
func TestSnapshotRepo_VersionEstableConMismoContenido(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewSnapshotRepository(pool)

	data := &entity.Snapshot{Materials: []entity.Material{material("partA", 10, 5)}}
	seed(t, pool, data, inventory.ImportOptions{})
	before, err := repo.Version(ctx)
	require.NoError(t, err)

	seed(t, pool, data, inventory.ImportOptions{})
	after, err := repo.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestImportEstricto_DuplicadoEnPostgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	uc := inventory.NewImportUseCase(postgres.NewTxRunner(pool), nil)

	data := &entity.Snapshot{
		Materials: []entity.Material{material("partA", 10, 5)},
		BOM:       []entity.BOMEntry{{ScooterModel: "S1", PartID: "partA", RequiredPerUnit: 1}},
	}
	_, err := uc.Import(ctx, data, inventory.ImportOptions{Strict: true})
	require.NoError(t, err)

	_, err = uc.Import(ctx, data, inventory.ImportOptions{Strict: true})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// Material nuevo pero modelo ya cargado: ListByModel lo detecta.
	_, err = uc.Import(ctx, &entity.Snapshot{
		Materials: []entity.Material{material("partZ", 1, 1)},
		BOM:       []entity.BOMEntry{{ScooterModel: "S1", PartID: "partZ", RequiredPerUnit: 1}},
	}, inventory.ImportOptions{Strict: true})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	bom, err := postgres.NewBOMRepository(pool).ListByModel(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, []entity.BOMEntry{{ScooterModel: "S1", PartID: "partA", RequiredPerUnit: 1}}, bom)
}
