package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/mes-pro/internal/application/analytics"
	"github.com/tu-usuario/mes-pro/internal/application/auth"
	"github.com/tu-usuario/mes-pro/internal/application/inventory"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
	"github.com/tu-usuario/mes-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/mes-pro/internal/interfaces/http"
	"github.com/tu-usuario/mes-pro/pkg/config"
	"github.com/tu-usuario/mes-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewManufacturingOrderRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	workCenterRepo := postgres.NewWorkCenterRepository(pool)
	stockItemRepo := postgres.NewStockItemRepository(pool)
	stockMovementRepo := postgres.NewStockMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		AccessExpMinutes:  cfg.JWT.AccessExpMinutes,
		RefreshExpMinutes: cfg.JWT.RefreshExpMinutes,
		Issuer:            cfg.JWT.Issuer,
	}, cfg.Security.BcryptCost)
	productUC := usecase.NewProductUseCase(txRunner, productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, workOrderRepo, analyticsRepo)
	workOrderUC := usecase.NewWorkOrderUseCase(workOrderRepo, orderRepo)
	bomUC := usecase.NewBOMUseCase(txRunner, bomRepo, productRepo)
	workCenterUC := usecase.NewWorkCenterUseCase(workCenterRepo)
	userUC := usecase.NewUserUseCase(userRepo, cfg.Security.BcryptCost)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	ledgerUC := inventory.NewLedgerUseCase(stockItemRepo, stockMovementRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use("/api", limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		OrderUC:      orderUC,
		WorkOrderUC:  workOrderUC,
		BOMUC:        bomUC,
		WorkCenterUC: workCenterUC,
		UserUC:       userUC,
		Movements:    registerMovementUC,
		Ledger:       ledgerUC,
		DashboardUC:  dashboardUC,
		UserRepo:     userRepo,
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
