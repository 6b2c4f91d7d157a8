package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davidrt/ventastock-api/internal/application/auth"
	"github.com/davidrt/ventastock-api/internal/application/crm"
	"github.com/davidrt/ventastock-api/internal/application/inventory"
	"github.com/davidrt/ventastock-api/internal/application/report"
	"github.com/davidrt/ventastock-api/internal/application/usecase"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	ProductUC    *usecase.ProductUseCase
	DashboardUC  *usecase.DashboardUseCase
	RegisterTxn  *inventory.RegisterTransactionUseCase
	History      *inventory.LedgerHistoryUseCase
	Recompute    *inventory.RecomputeUseCase
	BulkImport   *inventory.BulkImportUseCase
	Kardex       *report.KardexUseCase
	LeadUC       *crm.LeadUseCase
	VisitUC      *crm.VisitUseCase
	AttendanceUC *crm.AttendanceUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: alta inicial de tenant)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleAdmin)
	managers := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Products (protegido; escritura solo admin/gerente)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", managers, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Libro de movimientos (protegido)
	inventoryHandler := NewInventoryHandler(deps.RegisterTxn, deps.History, deps.Recompute)
	products.Post("/:id/transactions", inventoryHandler.RegisterTransaction)
	products.Get("/:id/transactions", inventoryHandler.ListTransactions)
	products.Post("/:id/recompute", managers, inventoryHandler.Recompute)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.Kardex)
	products.Get("/:id/kardex.pdf", reportHandler.KardexPDF)

	// Importaciones masivas (protegido; solo admin/gerente)
	imports := protected.Group("/imports")
	importHandler := NewImportHandler(deps.BulkImport)
	imports.Post("/transactions", managers, importHandler.ImportTransactions)
	imports.Get("/", managers, importHandler.ListOperations)
	imports.Delete("/:operationId", adminOnly, importHandler.RollbackImport)

	// CRM (protegido)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Put("/:id/status", leadHandler.UpdateStatus)

	visits := protected.Group("/visits")
	visitHandler := NewVisitHandler(deps.VisitUC)
	visits.Post("/", visitHandler.Create)
	visits.Get("/", visitHandler.List)

	attendance := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendance.Post("/check-in", attendanceHandler.CheckIn)
	attendance.Post("/check-out", attendanceHandler.CheckOut)
	attendance.Get("/", managers, attendanceHandler.List)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
