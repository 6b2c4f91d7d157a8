package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davidrt/ventastock-api/internal/application/crm"
	"github.com/davidrt/ventastock-api/internal/application/dto"
)

// AttendanceHandler maneja las jornadas de los vendedores (protegido).
type AttendanceHandler struct {
	uc *crm.AttendanceUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *crm.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Abrir jornada (check-in)
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckInRequest  true  "location"
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      409   {object}  dto.ErrorResponse  "ya hay una jornada abierta"
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	att, err := h.uc.CheckIn(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(att)
}

// CheckOut godoc
// @Summary      Cerrar jornada (check-out)
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      404  {object}  dto.ErrorResponse  "no hay jornada abierta"
// @Router       /api/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	att, err := h.uc.CheckOut(GetCompanyID(c), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(att)
}

// List godoc
// @Summary      Listar jornadas de la empresa
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Filtrar por vendedor (UUID)"
// @Param        from     query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Param        limit    query  int     false  "Límite (default 20)"
// @Param        offset   query  int     false  "Offset (default 0)"
// @Success      200  {array}   dto.AttendanceResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
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
	atts, err := h.uc.List(GetCompanyID(c), c.Query("user_id"), from, to, page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(atts), "attendance": atts})
}
