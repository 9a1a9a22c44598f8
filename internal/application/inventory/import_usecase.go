package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/repository"
	"github.com/jhoicas/stock-health-api/pkg/logger"
)

// ImportOptions controla cómo se aplica una exportación sobre lo que ya hay en la BD.
type ImportOptions struct {
	// ReplaceBOM borra el BOM actual de cada modelo importado antes de cargar sus líneas.
	// Sin él, las líneas se suman a las existentes.
	ReplaceBOM bool
	// Strict es la carga inicial: cada material debe ser nuevo (Create) y ningún modelo
	// importado puede tener BOM previo. Cualquier choque aborta con domain.ErrDuplicate.
	// No se combina con ReplaceBOM.
	Strict bool
}

// ImportResult resumen de lo aplicado.
type ImportResult struct {
	Materials       int
	Models          int
	BOMLines        int
	RemovedBOMLines int64
}

// ImportUseCase carga materiales y BOM de una exportación (CSV/YAML) en el almacén.
type ImportUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewImportUseCase construye el caso de uso de importación.
func NewImportUseCase(tx TxRunner, log *logger.Logger) *ImportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportUseCase{tx: tx, log: log.Component("import")}
}

// Import valida el snapshot y lo aplica en una sola transacción: upsert de materiales y
// luego las líneas de BOM por modelo. Una línea que referencia un material que no está
// ni en la exportación ni en la BD aborta todo con *domain.MissingMaterialError.
func (uc *ImportUseCase) Import(ctx context.Context, snap *entity.Snapshot, opts ImportOptions) (*ImportResult, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: snapshot vacío", domain.ErrInvalidInput)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if opts.Strict && opts.ReplaceBOM {
		return nil, fmt.Errorf("%w: strict y replace-bom son excluyentes", domain.ErrInvalidInput)
	}

	res := &ImportResult{}
	err := uc.tx.Run(ctx, func(materialRepo repository.MaterialRepository, bomRepo repository.BOMRepository) error {
		known := make(map[string]struct{}, len(snap.Materials))
		for i := range snap.Materials {
			m := snap.Materials[i]
			save := materialRepo.Upsert
			if opts.Strict {
				save = materialRepo.Create
			}
			if err := save(ctx, &m); err != nil {
				return err
			}
			known[m.PartID] = struct{}{}
		}
		res.Materials = len(snap.Materials)

		for _, model := range snap.Models() {
			if opts.Strict {
				existing, err := bomRepo.ListByModel(ctx, model)
				if err != nil {
					return err
				}
				if len(existing) > 0 {
					return fmt.Errorf("modelo %s ya tiene %d líneas de BOM: %w", model, len(existing), domain.ErrDuplicate)
				}
			}
			if opts.ReplaceBOM {
				removed, err := bomRepo.DeleteByModel(ctx, model)
				if err != nil {
					return err
				}
				res.RemovedBOMLines += removed
			}
			for _, e := range snap.BOMFor(model) {
				if _, ok := known[e.PartID]; !ok {
					if _, err := materialRepo.GetByPartID(ctx, e.PartID); err != nil {
						if errors.Is(err, domain.ErrNotFound) {
							return &domain.MissingMaterialError{Model: model, PartID: e.PartID}
						}
						return err
					}
					known[e.PartID] = struct{}{}
				}
				if err := bomRepo.Add(ctx, &e); err != nil {
					return err
				}
				res.BOMLines++
			}
			res.Models++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("version", snap.Version).
		Int("materials", res.Materials).
		Int("models", res.Models).
		Int("bom_lines", res.BOMLines).
		Int64("removed_bom_lines", res.RemovedBOMLines).
		Bool("strict", opts.Strict).
		Msg("importación aplicada")
	return res, nil
}
