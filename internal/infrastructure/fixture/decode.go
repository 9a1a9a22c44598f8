package fixture

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// Columnas esperadas en los CSV (orden libre, encabezado obligatorio).
var (
	materialColumns = []string{"part_id", "part_name", "category", "current_stock", "reorder_point", "unit_price"}
	bomColumns      = []string{"scooter_model", "part_id", "required_per_unit"}
)

// yamlSnapshot formato del archivo YAML.
type yamlSnapshot struct {
	Version   string         `yaml:"version"`
	Materials []yamlMaterial `yaml:"materials"`
	BOM       []yamlBOMEntry `yaml:"bom"`
}

type yamlMaterial struct {
	PartID       string `yaml:"part_id"`
	PartName     string `yaml:"part_name"`
	Category     string `yaml:"category"`
	CurrentStock int64  `yaml:"current_stock"`
	ReorderPoint int64  `yaml:"reorder_point"`
	UnitPrice    string `yaml:"unit_price"`
}

type yamlBOMEntry struct {
	ScooterModel    string `yaml:"scooter_model"`
	PartID          string `yaml:"part_id"`
	RequiredPerUnit int64  `yaml:"required_per_unit"`
}

// DecodeYAML lee materiales y BOM de un documento YAML.
// Devuelve además la versión declarada en el archivo (puede venir vacía).
func DecodeYAML(data []byte) (version string, materials []entity.Material, bom []entity.BOMEntry, err error) {
	var doc yamlSnapshot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return "", nil, nil, fmt.Errorf("yaml: %w", err)
	}

	materials = make([]entity.Material, 0, len(doc.Materials))
	for i, m := range doc.Materials {
		price, err := parsePrice(m.UnitPrice)
		if err != nil {
			return "", nil, nil, fmt.Errorf("yaml: materials[%d] (%s): %w", i, m.PartID, err)
		}
		materials = append(materials, entity.Material{
			PartID:       strings.TrimSpace(m.PartID),
			PartName:     strings.TrimSpace(m.PartName),
			Category:     strings.TrimSpace(m.Category),
			CurrentStock: m.CurrentStock,
			ReorderPoint: m.ReorderPoint,
			UnitPrice:    price,
		})
	}
	bom = make([]entity.BOMEntry, 0, len(doc.BOM))
	for _, e := range doc.BOM {
		bom = append(bom, entity.BOMEntry{
			ScooterModel:    strings.TrimSpace(e.ScooterModel),
			PartID:          strings.TrimSpace(e.PartID),
			RequiredPerUnit: e.RequiredPerUnit,
		})
	}
	return doc.Version, materials, bom, nil
}

// NewReader envuelve r con el decodificador del encoding indicado.
// Las planillas exportadas desde Excel en Windows suelen venir en Latin-1/Windows-1252.
func NewReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("encoding %q no soportado", encoding)
	}
}

// DecodeMaterialsCSV lee materiales de un CSV con encabezado.
func DecodeMaterialsCSV(r io.Reader, encoding string) ([]entity.Material, error) {
	rows, err := readCSV(r, encoding, materialColumns)
	if err != nil {
		return nil, fmt.Errorf("materials.csv: %w", err)
	}
	materials := make([]entity.Material, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // encabezado en la línea 1
		stock, err := parseInt(row["current_stock"])
		if err != nil {
			return nil, fmt.Errorf("materials.csv línea %d: current_stock: %w", line, err)
		}
		rp, err := parseInt(row["reorder_point"])
		if err != nil {
			return nil, fmt.Errorf("materials.csv línea %d: reorder_point: %w", line, err)
		}
		price, err := parsePrice(row["unit_price"])
		if err != nil {
			return nil, fmt.Errorf("materials.csv línea %d: %w", line, err)
		}
		materials = append(materials, entity.Material{
			PartID:       row["part_id"],
			PartName:     row["part_name"],
			Category:     row["category"],
			CurrentStock: stock,
			ReorderPoint: rp,
			UnitPrice:    price,
		})
	}
	return materials, nil
}

// DecodeBOMCSV lee líneas de BOM de un CSV con encabezado.
func DecodeBOMCSV(r io.Reader, encoding string) ([]entity.BOMEntry, error) {
	rows, err := readCSV(r, encoding, bomColumns)
	if err != nil {
		return nil, fmt.Errorf("bom.csv: %w", err)
	}
	bom := make([]entity.BOMEntry, 0, len(rows))
	for i, row := range rows {
		req, err := parseInt(row["required_per_unit"])
		if err != nil {
			return nil, fmt.Errorf("bom.csv línea %d: required_per_unit: %w", i+2, err)
		}
		bom = append(bom, entity.BOMEntry{
			ScooterModel:    row["scooter_model"],
			PartID:          row["part_id"],
			RequiredPerUnit: req,
		})
	}
	return bom, nil
}

// readCSV devuelve cada fila como columna → valor. Acepta coma o punto y coma como separador.
func readCSV(r io.Reader, encoding string, required []string) ([]map[string]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	// El BOM UTF-8 se quita antes de decodificar: en latin1 se leería como "ï»¿".
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	decoded, err := NewReader(bytes.NewReader(raw), encoding)
	if err != nil {
		return nil, err
	}
	if raw, err = io.ReadAll(decoded); err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = detectSeparator(raw)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}

	header := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(map[string]string, len(required))
		for _, col := range required {
			if idx := header[col]; idx < len(rec) {
				row[col] = strings.TrimSpace(rec[idx])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func detectSeparator(raw []byte) rune {
	firstLine := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		firstLine = raw[:i]
	}
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		return ';'
	}
	return ','
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// parsePrice acepta "12.50" y también coma decimal ("12,50").
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unit_price inválido %q", s)
	}
	return d, nil
}
