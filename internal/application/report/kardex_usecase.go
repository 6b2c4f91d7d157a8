package report

import (
	"context"
	"fmt"

	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// KardexPDFGenerator puerto del generador de PDF del kardex de un producto.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, product *entity.Product, txns []*entity.StockTransaction) ([]byte, error)
}

// KardexUseCase arma el reporte kardex (historial de movimientos + derivados) de un producto.
type KardexUseCase struct {
	productRepo repository.ProductRepository
	txnRepo     repository.StockTransactionRepository
	generator   KardexPDFGenerator
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(
	productRepo repository.ProductRepository,
	txnRepo repository.StockTransactionRepository,
	generator KardexPDFGenerator,
) *KardexUseCase {
	return &KardexUseCase{productRepo: productRepo, txnRepo: txnRepo, generator: generator}
}

// Generate devuelve el PDF del kardex y un nombre de archivo sugerido.
func (uc *KardexUseCase) Generate(ctx context.Context, companyID, productID string) ([]byte, string, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}
	txns, err := uc.txnRepo.ListAllByProduct(productID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateKardexPDF(ctx, product, txns)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("kardex-%s.pdf", product.SKU), nil
}
