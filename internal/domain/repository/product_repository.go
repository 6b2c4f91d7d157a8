package repository

import (
	"github.com/shopspring/decimal"

	"github.com/davidrt/ventastock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateDerived es el único camino de escritura de CurrentStock/AvgConsumption
// y solo debe invocarse desde la recomputación transaccional del inventario.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateDerived(productID string, currentStock, avgConsumption decimal.Decimal) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
