// seed carga una exportación de materiales y BOM en PostgreSQL.
//
// Acepta un archivo .yaml/.yml o un directorio con materials.csv y bom.csv
// (planillas de Excel en Windows: usar -encoding windows-1252 o latin1).
//
// Uso:
//
//	go run ./cmd/seed [-encoding utf-8] [-replace-bom] [-migrate] <ruta>
//	go run ./cmd/seed -sql salida.sql <ruta>   // solo genera el script, no toca la BD
//
// La conexión se toma de DATABASE_URL o DB_* (igual que la API).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/stock-health-api/internal/application/inventory"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/fixture"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-health-api/pkg/config"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

const migrationFile = "001_materials_bom.sql"

func main() {
	encoding := flag.String("encoding", "utf-8", "encoding de los CSV: utf-8, latin1, windows-1252")
	replaceBOM := flag.Bool("replace-bom", false, "reemplazar el BOM de los modelos importados en vez de sumar")
	strict := flag.Bool("strict", false, "carga inicial: falla si algún material o BOM de modelo ya existe")
	migrate := flag.Bool("migrate", false, "aplicar "+migrationFile+" antes de importar")
	sqlOut := flag.String("sql", "", "escribir un script SQL en esta ruta en lugar de importar")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Uso: seed [flags] <archivo.yaml | directorio con materials.csv y bom.csv>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	snap, err := fixture.NewFileSource(flag.Arg(0), *encoding).Current(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer exportación: %v\n", err)
		os.Exit(1)
	}
	if err := snap.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Exportación inválida: %v\n", err)
		os.Exit(1)
	}

	if *sqlOut != "" && *strict {
		fmt.Fprintln(os.Stderr, "-strict solo aplica a la importación directa, no a -sql")
		os.Exit(2)
	}

	if *sqlOut != "" {
		out, err := os.Create(*sqlOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer out.Close()
		if err := writeSQL(out, snap, *replaceBOM); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generado %s: %d materiales, %d líneas de BOM\n", *sqlOut, len(snap.Materials), len(snap.BOM))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *migrate {
		path := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", migrationFile)
		ddl, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer migración: %v\n", err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(ddl)); err != nil {
			fmt.Fprintf(os.Stderr, "Aplicar migración: %v\n", err)
			os.Exit(1)
		}
	}

	uc := inventory.NewImportUseCase(postgres.NewTxRunner(pool), log)
	res, err := uc.Import(ctx, snap, inventory.ImportOptions{ReplaceBOM: *replaceBOM, Strict: *strict})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Importado: %d materiales, %d modelos, %d líneas de BOM\n", res.Materials, res.Models, res.BOMLines)
}

// writeSQL genera upserts equivalentes a la importación, dentro de una transacción.
func writeSQL(w io.Writer, snap *entity.Snapshot, replaceBOM bool) error {
	var b strings.Builder
	b.WriteString("-- Materiales y BOM generados por cmd/seed\n")
	fmt.Fprintf(&b, "-- Snapshot %s\n\nBEGIN;\n\n", snap.Version)

	b.WriteString("-- 1. Materiales\n")
	for _, m := range snap.Materials {
		fmt.Fprintf(&b, "INSERT INTO materials (part_id, part_name, category, current_stock, reorder_point, unit_price)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', %d, %d, %s)\n",
			escapeSQL(m.PartID), escapeSQL(m.PartName), escapeSQL(m.Category),
			m.CurrentStock, m.ReorderPoint, m.UnitPrice.String())
		b.WriteString("ON CONFLICT (part_id) DO UPDATE SET part_name = EXCLUDED.part_name, category = EXCLUDED.category, " +
			"current_stock = EXCLUDED.current_stock, reorder_point = EXCLUDED.reorder_point, " +
			"unit_price = EXCLUDED.unit_price, updated_at = now();\n")
	}

	b.WriteString("\n-- 2. BOM por modelo\n")
	for _, model := range snap.Models() {
		if replaceBOM {
			fmt.Fprintf(&b, "DELETE FROM bom_entries WHERE scooter_model = '%s';\n", escapeSQL(model))
		}
		for _, e := range snap.BOMFor(model) {
			fmt.Fprintf(&b, "INSERT INTO bom_entries (scooter_model, part_id, required_per_unit) VALUES ('%s', '%s', %d)\n",
				escapeSQL(e.ScooterModel), escapeSQL(e.PartID), e.RequiredPerUnit)
			b.WriteString("ON CONFLICT (scooter_model, part_id) DO UPDATE SET required_per_unit = bom_entries.required_per_unit + EXCLUDED.required_per_unit;\n")
		}
	}
	b.WriteString("\nCOMMIT;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
