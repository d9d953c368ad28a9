package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	LedgerUC    *ledger.UseCase
	EventLogUC  *usecase.EventLogUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; altas y bajas solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)
	products.Get("/:id/snapshot", ledgerHandler.GetSnapshot)
	products.Get("/:id/alert", ledgerHandler.GetAlert)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequireRole(entity.RoleAdmin), supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Delete)

	// Ledger: compras y ventas (protegido)
	ledgerGroup := protected.Group("/ledger")
	eventLogHandler := NewEventLogHandler(deps.EventLogUC)
	ledgerGroup.Post("/purchases", ledgerHandler.RecordPurchase)
	ledgerGroup.Post("/sales", ledgerHandler.RecordSale)
	ledgerGroup.Get("/purchases", eventLogHandler.ListPurchases)
	ledgerGroup.Get("/sales", eventLogHandler.ListSales)
	ledgerGroup.Get("/sales/:id/receipt", eventLogHandler.SaleReceipt)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
