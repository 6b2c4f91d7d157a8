package inventory

import (
	"context"
	"fmt"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/ledger"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// recomputeProduct recalcula CurrentStock y AvgConsumption de un producto desde
// el libro completo de transacciones y persiste el resultado. Debe ejecutarse con
// repositorios atados a la misma transacción que mutó el libro: bloquea la fila
// del producto (SELECT FOR UPDATE) para que dos escritores del mismo producto se
// serialicen y ninguno persista un agregado obsoleto.
//
// Siempre re-agrega desde cero: es la única estrategia que se auto-corrige si
// algún camino de escritura dejó el denormalizado desfasado.
func recomputeProduct(
	txnRepo repository.StockTransactionRepository,
	productRepo repository.ProductRepository,
	productID string,
) (*dto.RecomputeResponse, error) {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	txns, err := txnRepo.ListAllByProduct(productID)
	if err != nil {
		return nil, err
	}
	postings, err := postingsFromTransactions(txns)
	if err != nil {
		return nil, err
	}
	stock := ledger.CurrentStock(postings)
	avg := ledger.AverageConsumption(postings)
	if err := productRepo.UpdateDerived(productID, stock, avg); err != nil {
		return nil, err
	}
	return &dto.RecomputeResponse{
		ProductID:      productID,
		CurrentStock:   stock,
		AvgConsumption: avg,
	}, nil
}

// postingsFromTransactions convierte filas persistidas en asientos del agregador.
// Las filas vienen de caminos de escritura ya validados; si una no pasa los
// constructores es una violación de contrato y se reporta, no se suma mal.
func postingsFromTransactions(txns []*entity.StockTransaction) ([]ledger.Posting, error) {
	postings := make([]ledger.Posting, 0, len(txns))
	for _, t := range txns {
		kind, err := ledger.ParseKind(t.Type)
		if err != nil {
			return nil, fmt.Errorf("transacción %s: %w", t.ID, err)
		}
		var p ledger.Posting
		switch kind {
		case ledger.KindReceipt:
			p, err = ledger.NewReceipt(t.Quantity, t.Date)
		case ledger.KindConsumption:
			p, err = ledger.NewConsumption(t.Quantity, t.Date, t.IncludeInAvg)
		case ledger.KindCorrection:
			p = ledger.NewCorrection(t.Quantity, t.Date)
		}
		if err != nil {
			return nil, fmt.Errorf("transacción %s: %w", t.ID, err)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// RecomputeUseCase expone la recomputación forzada de un producto
// (endpoint de auto-sanado tras cargas externas o ediciones directas en DB).
type RecomputeUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRecomputeUseCase construye el caso de uso.
func NewRecomputeUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RecomputeUseCase {
	return &RecomputeUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Recompute valida pertenencia del producto y recalcula sus derivados en una transacción.
func (uc *RecomputeUseCase) Recompute(ctx context.Context, companyID, productID string) (*dto.RecomputeResponse, error) {
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

	var result *dto.RecomputeResponse
	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
		_ repository.ImportOperationRepository,
	) error {
		result, err = recomputeProduct(txnRepo, productRepo, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
