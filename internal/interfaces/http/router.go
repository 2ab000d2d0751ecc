package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastellanos/almacen-api/internal/application/analytics"
	"github.com/jcastellanos/almacen-api/internal/application/auth"
	"github.com/jcastellanos/almacen-api/internal/application/inventory"
	"github.com/jcastellanos/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	BatchUC       *usecase.BatchUseCase
	MoveInventory *inventory.MoveInventoryUseCase
	DashboardUC   *analytics.DashboardUseCase
	SearchUC      *analytics.SearchUseCase
	JWTSecret     string
	JWTExpMinutes int
}

// Router registra las rutas de la aplicación: las web (dashboard y búsqueda,
// con redirección al login si no hay sesión) y la API JSON (401 sin token).
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExpMinutes)
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC, deps.SearchUC)

	// Auth (público). El GET sirve el formulario al que redirigen las rutas
	// web; el POST acepta form o JSON y deja la cookie de sesión.
	app.Get("/auth/login", authHandler.LoginPage)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/logout", authHandler.Logout)

	// Rutas web protegidas: redirigen al login en lugar de responder 401.
	webAuth := WebAuthMiddleware(deps.JWTSecret)
	app.Get("/", webAuth, analyticsHandler.Dashboard)
	app.Get("/search", webAuth, analyticsHandler.Search)

	// API protegida (cookie de sesión o Bearer Token).
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/change-password", authHandler.ChangePassword)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	areas := api.Group("/areas")
	areas.Post("/", warehouseHandler.CreateArea)
	areas.Get("/", warehouseHandler.ListAreas)
	areas.Get("/:id", warehouseHandler.GetArea)
	areas.Put("/:id", warehouseHandler.UpdateArea)

	locations := api.Group("/locations")
	locations.Post("/", warehouseHandler.CreateShelfLocation)
	locations.Get("/", warehouseHandler.ListShelfLocations)
	locations.Get("/:id", warehouseHandler.GetShelfLocation)
	locations.Put("/:id", warehouseHandler.UpdateShelfLocation)
	locations.Delete("/:id", warehouseHandler.DeactivateShelfLocation)

	batches := api.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Put("/:id", batchHandler.Update)
	batches.Get("/:id/locations", batchHandler.Locations)

	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MoveInventory)
	invGroup.Post("/move", inventoryHandler.Move)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	api.Get("/dashboard", analyticsHandler.Dashboard)
	api.Get("/search", analyticsHandler.Search)
}
