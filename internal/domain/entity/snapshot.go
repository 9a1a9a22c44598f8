package entity

import (
	"fmt"
	"sort"
	"time"
)

// Snapshot vista consistente (un único instante) de materiales y BOM.
// Todos los cálculos del motor son funciones puras sobre un Snapshot; nadie lo muta.
type Snapshot struct {
	Version   string // identifica el instante; cambia cuando cambian los datos
	TakenAt   time.Time
	Materials []Material
	BOM       []BOMEntry
}

// MaterialIndex devuelve part_id → Material.
func (s *Snapshot) MaterialIndex() map[string]Material {
	idx := make(map[string]Material, len(s.Materials))
	for _, m := range s.Materials {
		idx[m.PartID] = m
	}
	return idx
}

// BOMFor devuelve las entradas de BOM del modelo, en el orden del snapshot.
func (s *Snapshot) BOMFor(scooterModel string) []BOMEntry {
	var entries []BOMEntry
	for _, e := range s.BOM {
		if e.ScooterModel == scooterModel {
			entries = append(entries, e)
		}
	}
	return entries
}

// Models devuelve los modelos distintos con BOM, ordenados.
func (s *Snapshot) Models() []string {
	seen := make(map[string]struct{})
	models := make([]string, 0)
	for _, e := range s.BOM {
		if _, ok := seen[e.ScooterModel]; ok {
			continue
		}
		seen[e.ScooterModel] = struct{}{}
		models = append(models, e.ScooterModel)
	}
	sort.Strings(models)
	return models
}

// Validate revisa la integridad estructural del snapshot y devuelve el primer problema.
// El punto de reorden no se valida aquí: un reorder_point <= 0 se reporta como
// ConfigurationError al clasificar el material.
func (s *Snapshot) Validate() error {
	seen := make(map[string]struct{}, len(s.Materials))
	for _, m := range s.Materials {
		if m.PartID == "" {
			return fmt.Errorf("material sin part_id")
		}
		if _, dup := seen[m.PartID]; dup {
			return fmt.Errorf("part_id %s duplicado", m.PartID)
		}
		seen[m.PartID] = struct{}{}
		if m.CurrentStock < 0 {
			return fmt.Errorf("material %s: current_stock negativo (%d)", m.PartID, m.CurrentStock)
		}
		if m.UnitPrice.IsNegative() {
			return fmt.Errorf("material %s: unit_price negativo (%s)", m.PartID, m.UnitPrice)
		}
	}
	for _, e := range s.BOM {
		if _, err := NewBOMEntry(e.ScooterModel, e.PartID, e.RequiredPerUnit); err != nil {
			return fmt.Errorf("BOM %s/%s: %w", e.ScooterModel, e.PartID, err)
		}
	}
	return nil
}
