// Package analytics contiene los casos de uso de consulta del motor de salud de inventario:
// cada consulta toma un snapshot consistente, invoca los servicios de dominio y arma el DTO.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/inventory"
	"github.com/jhoicas/stock-health-api/internal/domain/repository"
)

// Nombres de consulta usados en las claves de caché.
const (
	queryInventorySummary     = "inventory_summary"
	queryAlerts               = "alerts"
	queryStockHealth          = "stock_health"
	queryBuildCapacity        = "build_capacity"
	queryBuildCapacityAll     = "build_capacity_all"
	queryModels               = "models"
	queryMaterialRequirements = "material_requirements"
	queryReplenishment        = "replenishment"
)

// QueryUseCase fachada de consultas. No guarda estado entre llamadas salvo la caché
// opcional, cuyas claves dependen de la versión del snapshot.
type QueryUseCase struct {
	snapshots repository.SnapshotRepository
	cache     ResultCache
}

// NewQueryUseCase construye la fachada. cache puede ser nil (sin caché).
func NewQueryUseCase(snapshots repository.SnapshotRepository, cache ResultCache) *QueryUseCase {
	if cache == nil {
		cache = noCache{}
	}
	return &QueryUseCase{snapshots: snapshots, cache: cache}
}

// InventorySummary valorización total, conteos de stock bajo, desglose por categoría y
// la lista de materiales ordenada por part_id.
func (uc *QueryUseCase) InventorySummary(ctx context.Context) (*dto.InventorySummaryDTO, error) {
	return query(ctx, uc, queryInventorySummary, func(snap *entity.Snapshot) (*dto.InventorySummaryDTO, error) {
		v, err := inventory.Summarize(snap.Materials)
		if err != nil {
			return nil, err
		}
		return toSummaryDTO(v, snap.Materials, snap.Version), nil
	})
}

// Alerts alertas ordenadas por severidad con histogramas por severidad y tipo.
func (uc *QueryUseCase) Alerts(ctx context.Context) (*dto.AlertsDTO, error) {
	return query(ctx, uc, queryAlerts, func(snap *entity.Snapshot) (*dto.AlertsDTO, error) {
		report, err := inventory.GenerateAlerts(snap.Materials)
		if err != nil {
			return nil, err
		}
		return toAlertsDTO(report, snap.Version), nil
	})
}

// StockHealth conteo por estado (los cinco, aun en cero) y el detalle por material,
// del peor estado al mejor. page acota el detalle; el conteo siempre cubre todo el snapshot.
func (uc *QueryUseCase) StockHealth(ctx context.Context, page dto.PageRequest) (*dto.StockHealthDTO, error) {
	page.Normalize()
	key := fmt.Sprintf("%s|%d|%d", queryStockHealth, page.Limit, page.Offset)
	return query(ctx, uc, key, func(snap *entity.Snapshot) (*dto.StockHealthDTO, error) {
		return stockHealth(snap, page)
	})
}

func stockHealth(snap *entity.Snapshot, page dto.PageRequest) (*dto.StockHealthDTO, error) {
	tally, err := inventory.TallyHealth(snap.Materials)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int, len(tally))
	for s, n := range tally {
		byStatus[string(s)] = n
	}

	type ranked struct {
		item dto.MaterialHealthDTO
		rank int
	}
	rows := make([]ranked, 0, len(snap.Materials))
	for _, m := range snap.Materials {
		status, err := inventory.Classify(m)
		if err != nil {
			return nil, err
		}
		ratio, err := inventory.StockRatio(m)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ranked{
			rank: status.Rank(),
			item: dto.MaterialHealthDTO{
				PartID:       m.PartID,
				PartName:     m.PartName,
				Category:     m.Category,
				CurrentStock: m.CurrentStock,
				ReorderPoint: m.ReorderPoint,
				StockRatio:   ratio.StringFixed(4),
				Status:       string(status),
			},
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].rank != rows[j].rank {
			return rows[i].rank < rows[j].rank
		}
		return rows[i].item.PartID < rows[j].item.PartID
	})

	start := min(page.Offset, len(rows))
	end := len(rows)
	if page.Limit > 0 {
		end = min(start+page.Limit, len(rows))
	}
	items := make([]dto.MaterialHealthDTO, 0, end-start)
	for _, r := range rows[start:end] {
		items = append(items, r.item)
	}

	return &dto.StockHealthDTO{
		TotalMaterials:  len(snap.Materials),
		ByStatus:        byStatus,
		Materials:       items,
		Page:            dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(rows)},
		SnapshotVersion: snap.Version,
	}, nil
}

// BuildCapacity unidades máximas del modelo con el stock actual y sus cuellos de botella.
// Un modelo sin BOM devuelve *domain.UnknownModelError, nunca max_units = 0.
func (uc *QueryUseCase) BuildCapacity(ctx context.Context, scooterModel string) (*dto.BuildCapacityDTO, error) {
	scooterModel = strings.TrimSpace(scooterModel)
	if scooterModel == "" {
		return nil, fmt.Errorf("%w: scooter_model es obligatorio", domain.ErrInvalidInput)
	}
	key := queryBuildCapacity + "|" + scooterModel
	return query(ctx, uc, key, func(snap *entity.Snapshot) (*dto.BuildCapacityDTO, error) {
		res, err := inventory.BuildCapacity(scooterModel, snap.BOM, snap.MaterialIndex())
		if err != nil {
			return nil, err
		}
		out := toCapacityDTO(res)
		return &out, nil
	})
}

// BuildCapacityAll capacidad de todos los modelos, ordenados por nombre.
// El primer modelo con error hace fallar toda la consulta.
func (uc *QueryUseCase) BuildCapacityAll(ctx context.Context) (*dto.BuildCapacityAllDTO, error) {
	return query(ctx, uc, queryBuildCapacityAll, func(snap *entity.Snapshot) (*dto.BuildCapacityAllDTO, error) {
		results, err := capacityForAll(snap)
		if err != nil {
			return nil, err
		}
		out := &dto.BuildCapacityAllDTO{
			Capacities:      make([]dto.BuildCapacityDTO, 0, len(results)),
			SnapshotVersion: snap.Version,
		}
		for _, r := range results {
			out.Capacities = append(out.Capacities, toCapacityDTO(r))
		}
		return out, nil
	})
}

// capacityForAll calcula la capacidad de cada modelo del snapshot, en orden de Models().
func capacityForAll(snap *entity.Snapshot) ([]*entity.BuildCapacityResult, error) {
	idx := snap.MaterialIndex()
	models := snap.Models()
	results := make([]*entity.BuildCapacityResult, 0, len(models))
	for _, model := range models {
		res, err := inventory.BuildCapacity(model, snap.BOM, idx)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Models modelos con BOM en el snapshot, ordenados.
func (uc *QueryUseCase) Models(ctx context.Context) (*dto.ModelsDTO, error) {
	return query(ctx, uc, queryModels, func(snap *entity.Snapshot) (*dto.ModelsDTO, error) {
		models := snap.Models()
		return &dto.ModelsDTO{Models: models, Total: len(models)}, nil
	})
}

// MaterialRequirements consumo por material para fabricar req.Quantity unidades del modelo.
func (uc *QueryUseCase) MaterialRequirements(
	ctx context.Context,
	req dto.MaterialRequirementsRequest,
) (*dto.MaterialRequirementsDTO, error) {
	model := strings.TrimSpace(req.ScooterModel)
	if model == "" {
		return nil, fmt.Errorf("%w: scooter_model es obligatorio", domain.ErrInvalidInput)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser > 0", domain.ErrInvalidInput)
	}
	key := fmt.Sprintf("%s|%s|%d", queryMaterialRequirements, model, req.Quantity)
	return query(ctx, uc, key, func(snap *entity.Snapshot) (*dto.MaterialRequirementsDTO, error) {
		plan, err := inventory.MaterialRequirements(model, req.Quantity, snap.BOM, snap.MaterialIndex())
		if err != nil {
			return nil, err
		}
		return toRequirementsDTO(plan), nil
	})
}

// Replenishment lista de reposición priorizada.
func (uc *QueryUseCase) Replenishment(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	return query(ctx, uc, queryReplenishment, func(snap *entity.Snapshot) ([]dto.ReplenishmentSuggestionDTO, error) {
		list, err := inventory.Replenishment(snap.Materials)
		if err != nil {
			return nil, err
		}
		return toReplenishmentDTOs(list), nil
	})
}

// Snapshot obtiene el snapshot vigente ya validado (ver repository.LoadSnapshot).
func (uc *QueryUseCase) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	return repository.LoadSnapshot(ctx, uc.snapshots)
}

// query resuelve una consulta: si la fuente informa su versión y hay resultado en caché
// para esa versión, lo devuelve sin leer el snapshot; si no, carga el snapshot, calcula
// y guarda el resultado bajo la versión del snapshot leído. Los errores no se guardan.
func query[T any](
	ctx context.Context,
	uc *QueryUseCase,
	key string,
	compute func(*entity.Snapshot) (T, error),
) (T, error) {
	var zero T
	if vr, ok := uc.snapshots.(VersionReader); ok {
		if version, err := vr.Version(ctx); err == nil {
			if hit, ok := uc.cache.Get(version + "|" + key); ok {
				if v, ok := hit.(T); ok {
					return v, nil
				}
			}
		}
	}

	snap, err := uc.Snapshot(ctx)
	if err != nil {
		return zero, err
	}
	cacheKey := snap.Version + "|" + key
	if hit, ok := uc.cache.Get(cacheKey); ok {
		if v, ok := hit.(T); ok {
			return v, nil
		}
	}

	result, err := compute(snap)
	if err != nil {
		return zero, err
	}
	uc.cache.Add(cacheKey, result)
	return result, nil
}
