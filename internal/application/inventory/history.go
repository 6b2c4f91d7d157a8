package inventory

import (
	"context"
	"time"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// LedgerHistoryUseCase consulta paginada del libro de un producto (solo lectura).
type LedgerHistoryUseCase struct {
	productRepo repository.ProductRepository
	txnRepo     repository.StockTransactionRepository
}

// NewLedgerHistoryUseCase construye el caso de uso.
func NewLedgerHistoryUseCase(productRepo repository.ProductRepository, txnRepo repository.StockTransactionRepository) *LedgerHistoryUseCase {
	return &LedgerHistoryUseCase{productRepo: productRepo, txnRepo: txnRepo}
}

// List devuelve los asientos de un producto en un rango de fechas, más reciente primero.
func (uc *LedgerHistoryUseCase) List(
	_ context.Context,
	companyID, productID string,
	from, to *time.Time,
	page dto.PageRequest,
) ([]*dto.TransactionResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	page.DefaultPage()
	txns, err := uc.txnRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}
