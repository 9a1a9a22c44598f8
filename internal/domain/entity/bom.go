package entity

import "fmt"

// BOMEntry es una línea de la lista de materiales de un modelo terminado.
// El BOM completo de un modelo es el conjunto de entradas con el mismo ScooterModel.
type BOMEntry struct {
	ScooterModel    string
	PartID          string
	RequiredPerUnit int64 // unidades del material por unidad terminada, > 0
}

// NewBOMEntry construye una entrada validada.
func NewBOMEntry(scooterModel, partID string, requiredPerUnit int64) (*BOMEntry, error) {
	if scooterModel == "" {
		return nil, fmt.Errorf("scooter_model no puede estar vacío")
	}
	if partID == "" {
		return nil, fmt.Errorf("part_id no puede estar vacío")
	}
	if requiredPerUnit <= 0 {
		return nil, fmt.Errorf("required_per_unit debe ser positivo, recibido %d", requiredPerUnit)
	}
	return &BOMEntry{
		ScooterModel:    scooterModel,
		PartID:          partID,
		RequiredPerUnit: requiredPerUnit,
	}, nil
}
