package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resellhub/reseller-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *usecase.ItemUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	CustomerUC    *usecase.CustomerUseCase
	SaleUC        *usecase.SaleUseCase
	TransactionUC *usecase.TransactionUseCase
	ReportUC      *usecase.ReportUseCase
	AuthUC        *usecase.AuthUseCase
	PDF           ReportPDFGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Items. Las rutas fijas (bulk-update, search, alerts) van antes que /:id
	// para que Fiber no las capture como parámetro.
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Post("/bulk-update", itemHandler.BulkUpdate)
	items.Get("/search/upc/:upc", itemHandler.GetByUPC)
	items.Get("/alerts/low-stock", itemHandler.LowStock)
	items.Get("/alerts/overstocked", itemHandler.Overstocked)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	// Transactions
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDF)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/inventory-summary", reportHandler.InventorySummary)
	reports.Get("/top-selling", reportHandler.TopSelling)
	reports.Get("/profit-analysis", reportHandler.ProfitAnalysis)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/overstocked", reportHandler.Overstocked)
	reports.Get("/sales-performance", reportHandler.SalesPerformance)
	reports.Post("/custom", reportHandler.Custom)
	reports.Get("/export/:reportType", reportHandler.Export)
}
