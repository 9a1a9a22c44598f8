package entity

// MaterialCapacity cuántas unidades terminadas permite un material del BOM.
type MaterialCapacity struct {
	PartID          string
	PartName        string
	AvailableStock  int64
	RequiredPerUnit int64
	UnitsPossible   int64 // floor(AvailableStock / RequiredPerUnit)
}

// BuildCapacityResult capacidad máxima de ensamble de un modelo con el stock del snapshot.
// BottleneckMaterials son los materiales cuyo UnitsPossible == MaxUnits (todos los empates);
// SufficientMaterials es el complemento. Ambos ordenados por UnitsPossible ascendente.
type BuildCapacityResult struct {
	ScooterModel        string
	MaxUnits            int64
	TotalPartsInBOM     int
	BottleneckMaterials []MaterialCapacity
	SufficientMaterials []MaterialCapacity
}
