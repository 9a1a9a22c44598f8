package inventory

import (
	"context"

	"github.com/jhoicas/stock-health-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Una importación se aplica completa o no se aplica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		bomRepo repository.BOMRepository,
	) error) error
}
