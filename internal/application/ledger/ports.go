package ledger

import (
	"context"

	"github.com/jempresa/erp-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa transacción. Garantiza que el insert del
// movimiento y el ajuste de stock sean todo-o-nada: si fn devuelve error no
// queda nada visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movements repository.MovementRepository,
		products repository.ProductRepository,
	) error) error
}
