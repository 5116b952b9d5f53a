package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jempresa/erp-api/internal/application/ledger"
	"github.com/jempresa/erp-api/internal/application/reporting"
	"github.com/jempresa/erp-api/internal/application/usecase"
	"github.com/jempresa/erp-api/internal/domain/repository"
	"github.com/jempresa/erp-api/internal/infrastructure/postgres"
	"github.com/jempresa/erp-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jempresa/erp-api/internal/interfaces/http"
	"github.com/jempresa/erp-api/pkg/config"
	"github.com/jempresa/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		companyRepo  repository.CompanyRepository
		productRepo  repository.ProductRepository
		movementRepo repository.MovementRepository
		txRunner     ledger.TxRunner
	)

	switch cfg.DB.Driver {
	case "sqlite":
		store, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("apertura de SQLite")
		}
		defer store.Close()

		companyRepo = sqlite.NewCompanyRepository(store.DB())
		productRepo = sqlite.NewProductRepository(store.DB())
		movementRepo = sqlite.NewMovementRepository(store.DB())
		txRunner = sqlite.NewTxRunner(store)

	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("preparación del esquema")
		}

		companyRepo = postgres.NewCompanyRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
		movementRepo = postgres.NewMovementRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	productUC := usecase.NewProductUseCase(productRepo, companyRepo)
	ledgerUC := ledger.NewUseCase(txRunner, companyRepo, productRepo, movementRepo)
	reportUC := reporting.NewUseCase(movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		ProductUC: productUC,
		LedgerUC:  ledgerUC,
		ReportUC:  reportUC,
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
