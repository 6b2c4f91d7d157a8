package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/application/inventory"
)

// ImportHandler maneja la importación masiva de transacciones y su rollback (protegido).
type ImportHandler struct {
	uc *inventory.BulkImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *inventory.BulkImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportTransactions godoc
// @Summary      Importar transacciones desde CSV
// @Description  Acepta un CSV con header fijo sku,type,quantity,date,include_in_avg.
//
//	La operación es atómica: si alguna fila es inválida se devuelve el
//	reporte por fila (HTTP 422) y no se escribe nada.
//
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      201   {object}  dto.ImportResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ImportResultDTO
// @Router       /api/imports/transactions [post]
func (h *ImportHandler) ImportTransactions(c *fiber.Ctx) error {
	fileName := "import.csv"
	data := c.Body()

	// multipart con campo "file", o el CSV crudo en el cuerpo
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
		}
		defer f.Close()
		buf, err := io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
		}
		data = buf
		fileName = fh.Filename
	}
	if len(data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "CSV vacío"})
	}

	result, err := h.uc.ImportCSV(c.Context(), GetCompanyID(c), GetUserID(c), fileName, data)
	if err != nil {
		return respondDomainError(c, err)
	}
	if len(result.Errors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ListOperations godoc
// @Summary      Listar operaciones de importación
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite (default 20)"
// @Param        offset  query  int  false  "Offset (default 0)"
// @Success      200  {array}   dto.ImportOperationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/imports [get]
func (h *ImportHandler) ListOperations(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	ops, err := h.uc.ListOperations(c.Context(), GetCompanyID(c), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(ops), "operations": ops})
}

// RollbackImport godoc
// @Summary      Revertir una importación completa
// @Description  Elimina todas las transacciones de la operación y recalcula los
//
//	productos afectados en una sola transacción.
//
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Param        operationId  path      string  true  "Operation ID (UUID)"
// @Success      200  {object}  dto.RollbackResultDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/imports/{operationId} [delete]
func (h *ImportHandler) RollbackImport(c *fiber.Ctx) error {
	result, err := h.uc.Rollback(c.Context(), GetCompanyID(c), c.Params("operationId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(result)
}
