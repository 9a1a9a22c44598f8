package dto

// BuildCapacityRequest body de POST /api/build-capacity.
type BuildCapacityRequest struct {
	ScooterModel string `json:"scooter_model"`
}

// MaterialCapacityDTO unidades que permite un material del BOM.
type MaterialCapacityDTO struct {
	PartID          string `json:"part_id"`
	PartName        string `json:"part_name"`
	AvailableStock  int64  `json:"available_stock"`
	RequiredPerUnit int64  `json:"required_per_unit"`
	UnitsPossible   int64  `json:"units_possible"`
}

// BuildCapacityDTO capacidad de ensamble de un modelo.
type BuildCapacityDTO struct {
	ScooterModel        string                `json:"scooter_model"`
	MaxUnits            int64                 `json:"max_units"`
	TotalPartsInBOM     int                   `json:"total_parts_in_bom"`
	BottleneckMaterials []MaterialCapacityDTO `json:"bottleneck_materials"`
	SufficientMaterials []MaterialCapacityDTO `json:"sufficient_materials"`
}

// BuildCapacityAllDTO respuesta de GET /api/build-capacity (todos los modelos, ordenados).
type BuildCapacityAllDTO struct {
	Capacities      []BuildCapacityDTO `json:"capacities"`
	SnapshotVersion string             `json:"snapshot_version"`
}

// ModelsDTO respuesta de GET /api/models.
type ModelsDTO struct {
	Models []string `json:"models"`
	Total  int      `json:"total"`
}

// MaterialRequirementsRequest query de GET /api/material-requirements.
type MaterialRequirementsRequest struct {
	ScooterModel string `query:"scooter_model"`
	Quantity     int64  `query:"quantity"`
}

// RequirementDTO consumo y faltante de un material.
type RequirementDTO struct {
	PartID           string `json:"part_id"`
	PartName         string `json:"part_name"`
	RequiredQuantity int64  `json:"required_quantity"`
	AvailableStock   int64  `json:"available_stock"`
	Shortage         int64  `json:"shortage"`
	Status           string `json:"status"` // sufficient | shortage
}

// MaterialRequirementsDTO explosión del BOM para una cantidad objetivo.
type MaterialRequirementsDTO struct {
	ScooterModel string           `json:"scooter_model"`
	Quantity     int64            `json:"quantity"`
	CanBuild     bool             `json:"can_build"`
	Requirements []RequirementDTO `json:"requirements"`
}
