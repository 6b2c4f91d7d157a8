package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/ledger"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// RegisterTransactionUseCase registra un asiento manual en el libro de un producto
// y recalcula sus derivados en la misma transacción (append → recompute → persist).
type RegisterTransactionUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterTransactionUseCase construye el caso de uso.
func NewRegisterTransactionUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterTransactionUseCase {
	return &RegisterTransactionUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Register valida la entrada, inserta el asiento y recalcula stock y consumo
// promedio del producto dentro de una sola transacción.
func (uc *RegisterTransactionUseCase) Register(
	ctx context.Context,
	companyID, userID, productID string,
	in dto.RegisterTransactionRequest,
) (*dto.TransactionResponse, error) {
	txn, err := buildTransaction(companyID, userID, productID, "", in, time.Now())
	if err != nil {
		return nil, err
	}

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

	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
		_ repository.ImportOperationRepository,
	) error {
		if err := txnRepo.Create(txn); err != nil {
			return err
		}
		_, err := recomputeProduct(txnRepo, productRepo, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(txn), nil
}

// buildTransaction valida una entrada externa contra los constructores del libro
// (frontera de contrato: tipo conocido, cantidades no negativas en IN/OUT, fecha
// parseable) y produce la entidad a persistir. operationID vacío = asiento manual.
func buildTransaction(
	companyID, userID, productID, operationID string,
	in dto.RegisterTransactionRequest,
	now time.Time,
) (*entity.StockTransaction, error) {
	kind, err := ledger.ParseKind(in.Type)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	includeInAvg := in.IncludeInAvg
	switch kind {
	case ledger.KindReceipt:
		if _, err := ledger.NewReceipt(in.Quantity, date); err != nil {
			return nil, domain.ErrInvalidInput
		}
		includeInAvg = false
	case ledger.KindConsumption:
		if _, err := ledger.NewConsumption(in.Quantity, date, includeInAvg); err != nil {
			return nil, domain.ErrInvalidInput
		}
	case ledger.KindCorrection:
		// Cantidad con signo; el flag de promedio no aplica a correcciones.
		includeInAvg = false
	}
	if in.Quantity.Equal(decimal.Zero) && kind == ledger.KindCorrection {
		return nil, domain.ErrInvalidInput
	}

	return &entity.StockTransaction{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ProductID:    productID,
		OperationID:  operationID,
		Type:         string(kind),
		Quantity:     in.Quantity,
		Date:         date,
		IncludeInAvg: includeInAvg,
		CreatedAt:    now,
		CreatedBy:    userID,
	}, nil
}

func toTransactionResponse(t *entity.StockTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:           t.ID,
		ProductID:    t.ProductID,
		OperationID:  t.OperationID,
		Type:         t.Type,
		Quantity:     t.Quantity,
		Date:         t.Date,
		IncludeInAvg: t.IncludeInAvg,
		CreatedAt:    t.CreatedAt,
		CreatedBy:    t.CreatedBy,
	}
}
