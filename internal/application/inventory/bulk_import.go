package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// Header esperado del CSV de importación (contrato fijo, sin heurísticas de mapeo).
var csvHeader = []string{"sku", "type", "quantity", "date", "include_in_avg"}

// BulkImportUseCase importa transacciones masivas desde CSV como una operación
// atómica: o se insertan todas las filas y se recalculan todos los productos
// tocados, o no se escribe nada. También revierte operaciones completas.
type BulkImportUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	opRepo      repository.ImportOperationRepository
}

// NewBulkImportUseCase construye el caso de uso.
func NewBulkImportUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	opRepo repository.ImportOperationRepository,
) *BulkImportUseCase {
	return &BulkImportUseCase{txRunner: txRunner, productRepo: productRepo, opRepo: opRepo}
}

// ImportCSV valida y aplica una importación masiva. Si alguna fila es inválida
// devuelve el reporte por fila con Errors poblado y no escribe nada.
func (uc *BulkImportUseCase) ImportCSV(
	ctx context.Context,
	companyID, userID, fileName string,
	data []byte,
) (*dto.ImportResultDTO, error) {
	rows, rowErrs, err := uc.parseRows(companyID, data)
	if err != nil {
		return nil, err
	}
	if len(rowErrs) > 0 {
		return &dto.ImportResultDTO{Errors: rowErrs}, nil
	}
	if len(rows) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	op := &entity.ImportOperation{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		FileName:  fileName,
		RowCount:  len(rows),
		CreatedAt: now,
		CreatedBy: userID,
	}

	// Transacciones a insertar + set de productos a recalcular.
	txns := make([]*entity.StockTransaction, 0, len(rows))
	productIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, row := range rows {
		txn, err := buildTransaction(companyID, userID, row.productID, op.ID, row.req, now)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
		if _, ok := seen[row.productID]; !ok {
			seen[row.productID] = struct{}{}
			productIDs = append(productIDs, row.productID)
		}
	}

	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
		opRepo repository.ImportOperationRepository,
	) error {
		if err := opRepo.Create(op); err != nil {
			return err
		}
		if err := txnRepo.CreateBatch(txns); err != nil {
			return err
		}
		for _, productID := range productIDs {
			if _, err := recomputeProduct(txnRepo, productRepo, productID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ImportResultDTO{
		OperationID:     op.ID,
		RowsImported:    len(txns),
		ProductsTouched: len(productIDs),
	}, nil
}

// Rollback elimina las transacciones de una operación de importación y recalcula
// los productos afectados, todo en una transacción.
func (uc *BulkImportUseCase) Rollback(ctx context.Context, companyID, operationID string) (*dto.RollbackResultDTO, error) {
	op, err := uc.opRepo.GetByID(operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if op.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	var result *dto.RollbackResultDTO
	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
		opRepo repository.ImportOperationRepository,
	) error {
		productIDs, err := txnRepo.ProductIDsByOperation(operationID)
		if err != nil {
			return err
		}
		deleted, err := txnRepo.DeleteByOperation(operationID)
		if err != nil {
			return err
		}
		if err := opRepo.Delete(operationID); err != nil {
			return err
		}
		for _, productID := range productIDs {
			if _, err := recomputeProduct(txnRepo, productRepo, productID); err != nil {
				return err
			}
		}
		result = &dto.RollbackResultDTO{
			OperationID:        operationID,
			RowsDeleted:        deleted,
			ProductsRecomputed: len(productIDs),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListOperations lista las operaciones de importación de la empresa.
func (uc *BulkImportUseCase) ListOperations(_ context.Context, companyID string, page dto.PageRequest) ([]*dto.ImportOperationResponse, error) {
	page.DefaultPage()
	ops, err := uc.opRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ImportOperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, &dto.ImportOperationResponse{
			ID:        op.ID,
			FileName:  op.FileName,
			RowCount:  op.RowCount,
			CreatedAt: op.CreatedAt,
			CreatedBy: op.CreatedBy,
		})
	}
	return out, nil
}

// importRow fila válida del CSV con el producto ya resuelto por SKU.
type importRow struct {
	productID string
	req       dto.RegisterTransactionRequest
}

// parseRows lee el CSV, valida el header fijo y cada fila (SKU existente de la
// empresa, tipo conocido, cantidad y fecha parseables). Los errores de fila se
// acumulan en el reporte; un CSV malformado corta con ErrInvalidInput.
func (uc *BulkImportUseCase) parseRows(companyID string, data []byte) ([]importRow, []dto.ImportRowError, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}
	if !headerMatches(header) {
		return nil, nil, fmt.Errorf("%w: header esperado %s", domain.ErrInvalidInput, strings.Join(csvHeader, ","))
	}

	var rows []importRow
	var rowErrs []dto.ImportRowError
	// Cache de SKU→producto para no repetir lookups en archivos con muchos repetidos.
	bySKU := make(map[string]*entity.Product)

	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: line, Message: "fila CSV malformada"})
			continue
		}
		if len(record) != len(csvHeader) {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: line, Message: "cantidad de columnas incorrecta"})
			continue
		}

		sku := strings.TrimSpace(record[0])
		product, ok := bySKU[sku]
		if !ok {
			product, err = uc.productRepo.GetByCompanyAndSKU(companyID, sku)
			if err != nil {
				return nil, nil, err
			}
			bySKU[sku] = product
		}
		if product == nil {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: line, Message: "SKU no encontrado: " + sku})
			continue
		}

		quantity, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: line, Message: "cantidad inválida: " + record[2]})
			continue
		}
		includeInAvg := false
		if v := strings.TrimSpace(record[4]); v != "" {
			includeInAvg, err = strconv.ParseBool(v)
			if err != nil {
				rowErrs = append(rowErrs, dto.ImportRowError{Row: line, Message: "include_in_avg inválido: " + record[4]})
				continue
			}
		}

		req := dto.RegisterTransactionRequest{
			Type:         strings.TrimSpace(record[1]),
			Quantity:     quantity,
			Date:         strings.TrimSpace(record[3]),
			IncludeInAvg: includeInAvg,
		}
		// Validación completa (tipo, signo, fecha) con los constructores del libro.
		if _, err := buildTransaction(companyID, "", product.ID, "", req, time.Time{}); err != nil {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: line, Message: "fila inválida (tipo, cantidad o fecha)"})
			continue
		}
		rows = append(rows, importRow{productID: product.ID, req: req})
	}
	return rows, rowErrs, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(csvHeader) {
		return false
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), csvHeader[i]) {
			return false
		}
	}
	return true
}
