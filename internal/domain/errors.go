package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConfiguration       = errors.New("configuración de material inválida")
	ErrUnknownModel        = errors.New("modelo sin lista de materiales")
	ErrMissingMaterial     = errors.New("material referenciado no existe en el snapshot")
	ErrSnapshotUnavailable = errors.New("snapshot de inventario no disponible")
)

// ConfigurationError indica un material con punto de reorden no positivo.
// La razón stock/reorden no está definida, así que el material no se clasifica.
type ConfigurationError struct {
	PartID       string
	ReorderPoint int64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("material %s: reorder_point debe ser > 0 (actual %d)", e.PartID, e.ReorderPoint)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// UnknownModelError se devuelve cuando se pide capacidad para un modelo sin BOM.
// Nunca se traduce a max_units = 0: "no existe el producto" no es "no hay stock".
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("modelo %q: no hay entradas de BOM", e.Model)
}

func (e *UnknownModelError) Unwrap() error { return ErrUnknownModel }

// MissingMaterialError indica una entrada de BOM que referencia un part_id ausente del snapshot.
type MissingMaterialError struct {
	Model  string
	PartID string
}

func (e *MissingMaterialError) Error() string {
	return fmt.Sprintf("modelo %q: el material %s no existe en el snapshot", e.Model, e.PartID)
}

func (e *MissingMaterialError) Unwrap() error { return ErrMissingMaterial }
