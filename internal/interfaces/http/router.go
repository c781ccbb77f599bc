package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/analytics"
	"github.com/tu-usuario/mes-pro/internal/application/auth"
	"github.com/tu-usuario/mes-pro/internal/application/inventory"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	OrderUC      *usecase.OrderUseCase
	WorkOrderUC  *usecase.WorkOrderUseCase
	BOMUC        *usecase.BOMUseCase
	WorkCenterUC *usecase.WorkCenterUseCase
	UserUC       *usecase.UserUseCase
	Movements    *inventory.RegisterMovementUseCase
	Ledger       *inventory.LedgerUseCase
	DashboardUC  *analytics.DashboardUseCase
	UserRepo     repository.UserRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: signup, login, refresh)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh-token", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	// Auth (protegido: sesión propia)
	authGroup.Get("/profile", AuthMiddleware(deps.JWTSecret, deps.UserRepo), authHandler.Profile)
	authGroup.Post("/change-password", AuthMiddleware(deps.JWTSecret, deps.UserRepo), authHandler.ChangePassword)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret, deps.UserRepo), authHandler.Logout)

	// Products (protegido). /low-stock va antes de /:id para que no lo capture el parámetro.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Manufacturing orders (protegido). /stats antes de /:id.
	orders := protected.Group("/manufacturing-orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/stats", orderHandler.Stats)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Work orders (protegido)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.GetByID)
	workOrders.Put("/:id", workOrderHandler.Update)
	workOrders.Delete("/:id", workOrderHandler.Delete)

	// BOMs (protegido)
	boms := protected.Group("/boms")
	bomHandler := NewBOMHandler(deps.BOMUC)
	boms.Post("/", bomHandler.Create)
	boms.Get("/", bomHandler.List)
	boms.Get("/:id", bomHandler.GetByID)
	boms.Post("/:id/components", bomHandler.AddComponent)
	boms.Delete("/:id", bomHandler.Delete)

	// Work centers (protegido)
	workCenters := protected.Group("/work-centers")
	workCenterHandler := NewWorkCenterHandler(deps.WorkCenterUC)
	workCenters.Post("/", workCenterHandler.Create)
	workCenters.Get("/", workCenterHandler.List)
	workCenters.Get("/:id", workCenterHandler.GetByID)
	workCenters.Put("/:id", workCenterHandler.Update)
	workCenters.Delete("/:id", workCenterHandler.Delete)

	// Stock (protegido): libro, movimientos y registro de movimientos
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.Movements, deps.Ledger)
	stock.Get("/", stockHandler.ListItems)
	stock.Get("/movements", stockHandler.ListMovements)
	stock.Post("/movements", stockHandler.RecordMovement)

	// Users (protegido, administración): lectura para ADMIN y MANAGER,
	// escritura solo para ADMIN.
	users := protected.Group("/users", RequireRole(entity.RoleAdmin, entity.RoleManager))
	adminOnly := RequireRole(entity.RoleAdmin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.KPIs)
}
