package repository

import (
	"time"

	"github.com/davidrt/ventastock-api/internal/domain/entity"
)

// StockTransactionRepository define el puerto de persistencia del libro de inventario.
// Los asientos son append-only: no hay Update; Delete solo por operación (rollback).
type StockTransactionRepository interface {
	Create(txn *entity.StockTransaction) error
	CreateBatch(txns []*entity.StockTransaction) error
	// ListAllByProduct devuelve el libro completo de un producto, sin paginar.
	// Es la entrada del agregador: la recomputación siempre parte del conjunto total.
	ListAllByProduct(productID string) ([]*entity.StockTransaction, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockTransaction, error)
	// ProductIDsByOperation devuelve los productos tocados por una operación de importación.
	ProductIDsByOperation(operationID string) ([]string, error)
	DeleteByOperation(operationID string) (int64, error)
}
