package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/davidrt/ventastock-api/internal/application/auth"
	"github.com/davidrt/ventastock-api/internal/application/crm"
	"github.com/davidrt/ventastock-api/internal/application/inventory"
	"github.com/davidrt/ventastock-api/internal/application/report"
	"github.com/davidrt/ventastock-api/internal/application/usecase"
	infrapdf "github.com/davidrt/ventastock-api/internal/infrastructure/pdf"
	"github.com/davidrt/ventastock-api/internal/infrastructure/postgres"
	httpRouter "github.com/davidrt/ventastock-api/internal/interfaces/http"
	"github.com/davidrt/ventastock-api/pkg/config"
	"github.com/davidrt/ventastock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txnRepo := postgres.NewStockTransactionRepository(pool)
	opRepo := postgres.NewImportOperationRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	visitRepo := postgres.NewDealerVisitRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	registerTxnUC := inventory.NewRegisterTransactionUseCase(txRunner, productRepo)
	historyUC := inventory.NewLedgerHistoryUseCase(productRepo, txnRepo)
	recomputeUC := inventory.NewRecomputeUseCase(txRunner, productRepo)
	bulkImportUC := inventory.NewBulkImportUseCase(txRunner, productRepo, opRepo)

	kardexGenerator := infrapdf.NewMarotoKardexGenerator()
	kardexUC := report.NewKardexUseCase(productRepo, txnRepo, kardexGenerator)

	leadUC := crm.NewLeadUseCase(leadRepo)
	visitUC := crm.NewVisitUseCase(visitRepo)
	attendanceUC := crm.NewAttendanceUseCase(attendanceRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VentaStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		ProductUC:    productUC,
		DashboardUC:  dashboardUC,
		RegisterTxn:  registerTxnUC,
		History:      historyUC,
		Recompute:    recomputeUC,
		BulkImport:   bulkImportUC,
		Kardex:       kardexUC,
		LeadUC:       leadUC,
		VisitUC:      visitUC,
		AttendanceUC: attendanceUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
