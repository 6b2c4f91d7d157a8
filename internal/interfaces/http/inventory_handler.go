package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/application/inventory"
)

// InventoryHandler maneja el libro de movimientos de stock (protegido).
type InventoryHandler struct {
	register  *inventory.RegisterTransactionUseCase
	history   *inventory.LedgerHistoryUseCase
	recompute *inventory.RecomputeUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	register *inventory.RegisterTransactionUseCase,
	history *inventory.LedgerHistoryUseCase,
	recompute *inventory.RecomputeUseCase,
) *InventoryHandler {
	return &InventoryHandler{register: register, history: history, recompute: recompute}
}

// RegisterTransaction godoc
// @Summary      Registrar movimiento en el libro de un producto
// @Description  Inserta un asiento IN, OUT o CORRECTION y recalcula stock y
//
//	consumo promedio del producto en la misma transacción.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "Product ID (UUID)"
// @Param        body  body  dto.RegisterTransactionRequest  true  "type, quantity, date (YYYY-MM-DD), include_in_avg (solo OUT)"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transactions [post]
func (h *InventoryHandler) RegisterTransaction(c *fiber.Ctx) error {
	var in dto.RegisterTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	txn, err := h.register.Register(c.Context(), GetCompanyID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(txn)
}

// ListTransactions godoc
// @Summary      Historial del libro de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Product ID (UUID)"
// @Param        from    query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite (default 20)"
// @Param        offset  query  int     false  "Offset (default 0)"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from inválido (YYYY-MM-DD)"})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to inválido (YYYY-MM-DD)"})
	}
	txns, err := h.history.List(c.Context(), GetCompanyID(c), c.Params("id"), from, to, page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(txns), "transactions": txns})
}

// Recompute godoc
// @Summary      Recomputar derivados de un producto
// @Description  Re-agrega el libro completo y persiste current_stock y
//
//	avg_consumption. Útil tras cargas externas o correcciones directas en DB.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Product ID (UUID)"
// @Success      200  {object}  dto.RecomputeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/recompute [post]
func (h *InventoryHandler) Recompute(c *fiber.Ctx) error {
	result, err := h.recompute.Recompute(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(result)
}

// parseDateQuery parsea un query param de fecha opcional (vacío = nil).
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
