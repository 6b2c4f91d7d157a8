package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davidrt/ventastock-api/internal/application/report"
)

// ReportHandler maneja los reportes PDF (protegido).
type ReportHandler struct {
	kardex *report.KardexUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(kardex *report.KardexUseCase) *ReportHandler {
	return &ReportHandler{kardex: kardex}
}

// KardexPDF godoc
// @Summary      Kardex de un producto en PDF
// @Description  Historial completo del libro más stock y consumo promedio actuales.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "Product ID (UUID)"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/kardex.pdf [get]
func (h *ReportHandler) KardexPDF(c *fiber.Ctx) error {
	pdf, fileName, err := h.kardex.Generate(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(pdf)
}
