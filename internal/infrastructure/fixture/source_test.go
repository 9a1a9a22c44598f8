package fixture_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-health-api/internal/infrastructure/fixture"
)

const sampleYAML = `version: "2024-06"
materials:
  - part_id: WHEEL-10
    part_name: Rueda 10"
    category: Component
    current_stock: 12
    reorder_point: 10
    unit_price: "45.50"
  - part_id: FRAME-S1
    part_name: Chasis S1
    category: Assembly
    current_stock: 3
    reorder_point: 5
    unit_price: "120"
bom:
  - scooter_model: S1
    part_id: WHEEL-10
    required_per_unit: 2
  - scooter_model: S1
    part_id: FRAME-S1
    required_per_unit: 1
`

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestFileSource_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	writeFile(t, path, []byte(sampleYAML))

	src := fixture.NewFileSource(path, "utf-8")
	snap, err := src.Current(context.Background())
	require.NoError(t, err)
	require.NoError(t, snap.Validate())

	require.Len(t, snap.Materials, 2)
	assert.Equal(t, "WHEEL-10", snap.Materials[0].PartID)
	assert.Equal(t, "45.5", snap.Materials[0].UnitPrice.String())
	assert.Equal(t, int64(5), snap.Materials[1].ReorderPoint)
	require.Len(t, snap.BOM, 2)
	assert.Equal(t, []string{"S1"}, snap.Models())
	assert.False(t, snap.TakenAt.IsZero())
	assert.Contains(t, snap.Version, "2024-06-")

	v, err := src.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap.Version, v)
}

func TestFileSource_VersionCambiaConElContenido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yml")
	writeFile(t, path, []byte(sampleYAML))
	src := fixture.NewFileSource(path, "")

	v1, err := src.Version(context.Background())
	require.NoError(t, err)
	again, err := src.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, v1, again, "mismo contenido, misma versión")

	writeFile(t, path, []byte(sampleYAML+"  - scooter_model: S2\n    part_id: WHEEL-10\n    required_per_unit: 2\n"))
	v2, err := src.Version(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, v1, v2)
}

func TestFileSource_CSVLatin1(t *testing.T) {
	dir := t.TempDir()
	// "Tornillo ñ" en ISO-8859-1: ñ = 0xF1
	materials := []byte("\xef\xbb\xbfPart_ID;Part_Name;Category;Current_Stock;Reorder_Point;Unit_Price\n" +
		"SCR-01;Tornillo \xf1;Component;500;100;0,05\n" +
		"\n" +
		"DECK-01;Plataforma;Assembly;4;5;80.00\n")
	bomCSV := []byte("scooter_model,part_id,required_per_unit\nS1,SCR-01,12\nS1,DECK-01,1\n")
	writeFile(t, filepath.Join(dir, fixture.MaterialsFile), materials)
	writeFile(t, filepath.Join(dir, fixture.BOMFile), bomCSV)

	snap, err := fixture.NewFileSource(dir, "latin1").Current(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Materials, 2, "las filas vacías se ignoran")
	assert.Equal(t, "Tornillo ñ", snap.Materials[0].PartName)
	assert.Equal(t, "0.05", snap.Materials[0].UnitPrice.String())
	assert.Equal(t, int64(500), snap.Materials[0].CurrentStock)
	require.Len(t, snap.BOM, 2)
	assert.Equal(t, int64(12), snap.BOM[0].RequiredPerUnit)
	assert.Len(t, snap.Version, 16)
}

func TestFileSource_Errores(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("no existe", func(t *testing.T) {
		_, err := fixture.NewFileSource(filepath.Join(dir, "nada.yaml"), "").Current(ctx)
		assert.Error(t, err)
	})

	t.Run("extensión no soportada", func(t *testing.T) {
		p := filepath.Join(dir, "snapshot.json")
		writeFile(t, p, []byte("{}"))
		_, err := fixture.NewFileSource(p, "").Current(ctx)
		assert.Error(t, err)
	})

	t.Run("falta bom.csv", func(t *testing.T) {
		d := t.TempDir()
		writeFile(t, filepath.Join(d, fixture.MaterialsFile), []byte("part_id,part_name,category,current_stock,reorder_point,unit_price\n"))
		_, err := fixture.NewFileSource(d, "").Current(ctx)
		assert.Error(t, err)
	})

	t.Run("stock no numérico", func(t *testing.T) {
		d := t.TempDir()
		writeFile(t, filepath.Join(d, fixture.MaterialsFile), []byte("part_id,part_name,category,current_stock,reorder_point,unit_price\nA,a,c,muchos,1,1\n"))
		writeFile(t, filepath.Join(d, fixture.BOMFile), []byte("scooter_model,part_id,required_per_unit\n"))
		_, err := fixture.NewFileSource(d, "").Current(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "línea 2")
	})

	t.Run("columna faltante", func(t *testing.T) {
		d := t.TempDir()
		writeFile(t, filepath.Join(d, fixture.MaterialsFile), []byte("part_id,part_name\nA,a\n"))
		writeFile(t, filepath.Join(d, fixture.BOMFile), []byte("scooter_model,part_id,required_per_unit\n"))
		_, err := fixture.NewFileSource(d, "").Current(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reorder_point")
	})

	t.Run("campo yaml desconocido", func(t *testing.T) {
		p := filepath.Join(dir, "bad.yaml")
		writeFile(t, p, []byte("materials:\n  - part_id: A\n    stock: 3\n"))
		_, err := fixture.NewFileSource(p, "").Current(ctx)
		assert.Error(t, err)
	})

	t.Run("contexto cancelado", func(t *testing.T) {
		cctx, cancel := context.WithTimeout(ctx, time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)
		_, err := fixture.NewFileSource(dir, "").Current(cctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNewReader_EncodingNoSoportado(t *testing.T) {
	_, err := fixture.NewReader(nil, "ebcdic")
	assert.Error(t, err)
}
