package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tanerp/internal/application/analytics"
	"github.com/tu-usuario/tanerp/internal/application/auth"
	"github.com/tu-usuario/tanerp/internal/application/billing"
	"github.com/tu-usuario/tanerp/internal/application/inventory"
	"github.com/tu-usuario/tanerp/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	StockLedger *inventory.StockLedger
	SupplierUC  *billing.SupplierUseCase
	CustomerUC  *billing.CustomerUseCase
	SalesUC     *billing.SalesInvoiceUseCase
	PurchaseUC  *billing.PurchaseInvoiceUseCase
	InvoicePDF  *billing.PDFUseCase
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

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Artículos
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Remove)
	items.Post("/:id/deactivate", itemHandler.Deactivate)

	// Ajustes de inventario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockLedger)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/next-code", supplierHandler.NextCode)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Remove)
	suppliers.Post("/:id/deactivate", supplierHandler.Deactivate)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/deactivate", customerHandler.Deactivate)

	// Facturas de venta
	sales := protected.Group("/sales-invoices")
	salesHandler := NewSalesInvoiceHandler(deps.SalesUC, deps.InvoicePDF)
	sales.Get("/", salesHandler.List)
	sales.Post("/", salesHandler.Create)
	sales.Get("/next-number", salesHandler.NextNumber)
	sales.Get("/:id", salesHandler.GetByID)
	sales.Put("/:id", salesHandler.Update)
	sales.Post("/:id/post", salesHandler.Post)
	sales.Post("/:id/status", salesHandler.SetStatus)
	sales.Get("/:id/pdf", salesHandler.PDF)

	// Facturas de compra
	purchases := protected.Group("/purchase-invoices")
	purchaseHandler := NewPurchaseInvoiceHandler(deps.PurchaseUC)
	purchases.Get("/", purchaseHandler.List)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/next-number", purchaseHandler.NextNumber)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Post("/:id/post", purchaseHandler.Post)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
