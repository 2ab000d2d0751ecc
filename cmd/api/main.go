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
	"github.com/jcastellanos/almacen-api/internal/application/analytics"
	"github.com/jcastellanos/almacen-api/internal/application/auth"
	"github.com/jcastellanos/almacen-api/internal/application/inventory"
	"github.com/jcastellanos/almacen-api/internal/application/usecase"
	"github.com/jcastellanos/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastellanos/almacen-api/internal/interfaces/http"
	"github.com/jcastellanos/almacen-api/pkg/config"
	"github.com/jcastellanos/almacen-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	areaRepo := postgres.NewWarehouseAreaRepository(pool)
	shelfRepo := postgres.NewShelfLocationRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	blRepo := postgres.NewBatchLocationRepository(pool)
	movRepo := postgres.NewInventoryMovementRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	searchRepo := postgres.NewSearchRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	warehouseUC := usecase.NewWarehouseUseCase(areaRepo, shelfRepo)
	batchUC := usecase.NewBatchUseCase(batchRepo, productRepo, blRepo)
	moveInventoryUC := inventory.NewMoveInventoryUseCase(txRunner, blRepo, batchRepo, shelfRepo, movRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, batchRepo, areaRepo)
	searchUC := analytics.NewSearchUseCase(searchRepo)

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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		WarehouseUC:   warehouseUC,
		BatchUC:       batchUC,
		MoveInventory: moveInventoryUC,
		DashboardUC:   dashboardUC,
		SearchUC:      searchUC,
		JWTSecret:     cfg.JWT.Secret,
		JWTExpMinutes: cfg.JWT.Expiration,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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
