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

	appanalytics "github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Farmacia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché del dashboard: Redis si está configurado, noop en caso contrario.
	var dashboardCache cache.DashboardCache = cache.NoopDashboardCache{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisDashboardCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, dashboard sin caché")
		} else {
			dashboardCache = redisCache
			defer redisCache.Close()
		}
	}

	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	ledgerUC := ledger.NewUseCase(txRunner, productRepo, supplierRepo, log)
	eventLogUC := usecase.NewEventLogUseCase(purchaseRepo, saleRepo, productRepo, receipts)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, dashboardCache)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Farmacia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		LedgerUC:    ledgerUC,
		EventLogUC:  eventLogUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
