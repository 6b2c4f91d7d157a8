package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davidrt/ventastock-api/internal/application/crm"
	"github.com/davidrt/ventastock-api/internal/application/dto"
)

// VisitHandler maneja visitas a distribuidores (protegido).
type VisitHandler struct {
	uc *crm.VisitUseCase
}

// NewVisitHandler construye el handler.
func NewVisitHandler(uc *crm.VisitUseCase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar visita a distribuidor
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitRequest  true  "dealer_name, location, purpose, notes, visited_at (YYYY-MM-DD)"
// @Success      201   {object}  dto.VisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	visit, err := h.uc.Create(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(visit)
}

// List godoc
// @Summary      Listar visitas de la empresa
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Filtrar por vendedor (UUID)"
// @Param        from     query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Param        limit    query  int     false  "Límite (default 20)"
// @Param        offset   query  int     false  "Offset (default 0)"
// @Success      200  {array}   dto.VisitResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
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
	visits, err := h.uc.List(GetCompanyID(c), c.Query("user_id"), from, to, page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(visits), "visits": visits})
}
