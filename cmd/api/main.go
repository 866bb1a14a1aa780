package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/application/report"
	domainprofit "github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/dataset"
	infrapdf "github.com/jhoicas/Rentabilidad-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Rentabilidad-api/internal/interfaces/http"
	"github.com/jhoicas/Rentabilidad-api/pkg/config"
	"github.com/jhoicas/Rentabilidad-api/pkg/logger"
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
		Str("dataset_source", cfg.Dataset.Source).
		Msg("iniciando aplicación")

	// Los importes salen como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	source, closeSource := orderSource(ctx, cfg, log)
	defer closeSource()

	orders := dataset.NewCachedOrderRepository(source, cfg.Dataset.CacheTTL)

	policy := domainprofit.Policy{
		CustomerShare:      cfg.Profit.CustomerShare,
		CompanyShare:       cfg.Profit.CompanyShare,
		InitialCashBalance: cfg.Profit.InitialCashBalance,
	}
	profitUC := profitability.NewUseCase(orders, policy, log)
	reportUC := report.NewUseCase(profitUC, infrapdf.NewMarotoReportGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  "GET,OPTIONS",
		ExposeHeaders: httpRouter.HeaderRequestID + ",Content-Disposition",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rentabilidad API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProfitabilityUC: profitUC,
		ReportUC:        reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range quit {
		if sig == syscall.SIGHUP {
			// Recarga: la próxima petición vuelve a leer el dataset.
			orders.Invalidate()
			log.Info().Msg("SIGHUP recibido, caché del dataset invalidada")
			continue
		}
		break
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// orderSource elige el origen de las órdenes según DATASET_SOURCE.
// Devuelve también la función para liberar recursos (pool de PostgreSQL).
func orderSource(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.OrderRepository, func()) {
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		return postgres.NewOrderRepository(pool), pool.Close
	default:
		log.Info().Str("path", cfg.Dataset.Path).Str("encoding", cfg.Dataset.Encoding).Msg("dataset desde archivo")
		return dataset.NewFileOrderRepository(cfg.Dataset.Path, cfg.Dataset.Encoding), func() {}
	}
}
