package inventory

import (
	"context"

	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción de base de datos,
// entregando repositorios atados a esa transacción. Commit si el callback
// retorna nil, Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
		opRepo repository.ImportOperationRepository,
	) error) error
}
