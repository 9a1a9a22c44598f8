package analytics

import (
	"context"

	"github.com/jhoicas/stock-health-api/internal/application/dto"
)

// ResultCache caché de resultados ya calculados. Las claves incluyen la versión del
// snapshot, así que un snapshot nuevo nunca recibe resultados de otro.
type ResultCache interface {
	Get(key string) (any, bool)
	Add(key string, value any)
}

// VersionReader lo implementan las fuentes de snapshot que pueden informar su versión
// sin cargar todos los datos. Permite responder desde caché sin leer el snapshot.
type VersionReader interface {
	Version(ctx context.Context) (string, error)
}

// StockHealthPDFGenerator puerto de salida para el reporte PDF de salud de inventario.
type StockHealthPDFGenerator interface {
	GenerateStockHealthPDF(ctx context.Context, report *dto.StockHealthReportDTO) ([]byte, error)
}

type noCache struct{}

func (noCache) Get(string) (any, bool) { return nil, false }
func (noCache) Add(string, any)        {}
