package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/analytics"
	appauth "github.com/jhoicas/axia-erp/internal/application/auth"
	"github.com/jhoicas/axia-erp/internal/application/billing"
	"github.com/jhoicas/axia-erp/internal/application/purchasing"
	"github.com/jhoicas/axia-erp/internal/application/treasury"
	"github.com/jhoicas/axia-erp/internal/application/usecase"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *appauth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CompanyUC   *usecase.CompanyUseCase
	ResetUC     *treasury.BalanceResetUseCase
	ClientUC    *usecase.ClientUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	SaleUC      *billing.SaleInvoiceUseCase
	PDFUC       *billing.PDFUseCase
	PurchaseUC  *purchasing.PurchaseInvoiceUseCase
	PaymentUC   *treasury.PaymentUseCase
	DepositUC   *treasury.DepositUseCase
	LoanUC      *treasury.LoanUseCase
	AuditUC     *treasury.AuditUseCase
	DashboardUC *analytics.DashboardUseCase
	AIUC        *usecase.AIUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/init-superadmin", authHandler.InitSuperAdmin)

	// Listados públicos de solo lectura
	publicHandler := NewPublicHandler(deps.ProductUC, deps.UserUC, deps.SaleUC, deps.PurchaseUC)
	public := api.Group("/public")
	public.Get("/products", publicHandler.Products)
	public.Get("/users", publicHandler.Users)
	public.Get("/users/:id", publicHandler.UserByID)
	public.Get("/sale-invoices", publicHandler.SaleInvoices)
	public.Get("/purchase-invoices", publicHandler.PurchaseInvoices)

	// Rutas protegidas (requieren Bearer Token no revocado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	protected.Post("/auth/register", authHandler.Register)
	protected.Post("/auth/logout", authHandler.Logout)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Get("/search", userHandler.Search)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Companies (+ reset de saldo, solo ADMIN y SUPERADMIN)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.ResetUC)
	companies := protected.Group("/companies")
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/reset-balance",
		RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin),
		companyHandler.ResetBalance)

	// Clients
	clientHandler := NewClientHandler(deps.ClientUC)
	clients := protected.Group("/clients")
	clients.Get("/search", clientHandler.Search)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Suppliers
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Get("/search", supplierHandler.Search)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/search", productHandler.Search)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sale invoices (+ líneas + PDF)
	saleHandler := NewSaleInvoiceHandler(deps.SaleUC, deps.PDFUC)
	sales := protected.Group("/sale-invoices")
	sales.Get("/search/date", saleHandler.SearchByDate)
	sales.Get("/search/client", saleHandler.SearchByClient)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)
	sales.Get("/:id/pdf", saleHandler.DownloadPDF)
	sales.Post("/:id/items", saleHandler.AddItem)
	sales.Put("/:id/items/:itemId", saleHandler.UpdateItem)
	sales.Delete("/:id/items/:itemId", saleHandler.RemoveItem)

	// Purchase invoices (+ líneas)
	purchaseHandler := NewPurchaseInvoiceHandler(deps.PurchaseUC)
	purchases := protected.Group("/purchase-invoices")
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)
	purchases.Post("/:id/items", purchaseHandler.AddItem)
	purchases.Put("/:id/items/:itemId", purchaseHandler.UpdateItem)
	purchases.Delete("/:id/items/:itemId", purchaseHandler.RemoveItem)

	// Payments
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments := protected.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Supplier deposits
	depositHandler := NewDepositHandler(deps.DepositUC)
	deposits := protected.Group("/deposits")
	deposits.Post("/", depositHandler.Create)
	deposits.Get("/", depositHandler.List)
	deposits.Get("/:id", depositHandler.GetByID)
	deposits.Put("/:id", depositHandler.Update)
	deposits.Delete("/:id", depositHandler.Delete)

	// Loans
	loanHandler := NewLoanHandler(deps.LoanUC)
	loans := protected.Group("/loans")
	loans.Get("/stats", loanHandler.Stats)
	loans.Get("/report", loanHandler.Report)
	loans.Get("/client/:clientId", loanHandler.ListByClient)
	loans.Post("/", loanHandler.Create)
	loans.Get("/", loanHandler.List)
	loans.Get("/:id", loanHandler.GetByID)
	loans.Put("/:id/status", loanHandler.UpdateStatus)
	loans.Delete("/:id", loanHandler.Delete)
	loans.Get("/:id/receipt", loanHandler.DownloadReceipt)

	// Audit (solo ADMIN y SUPERADMIN)
	auditHandler := NewAuditHandler(deps.AuditUC)
	audit := protected.Group("/audit")
	audit.Get("/logs",
		RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin),
		auditHandler.ListLogs)

	// Analytics
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	dash := protected.Group("/analytics")
	dash.Get("/dashboard", analyticsHandler.Dashboard)
	dash.Get("/inventory", analyticsHandler.InventorySummary)
	dash.Get("/sales", analyticsHandler.SalesMetrics)
	dash.Get("/top-products", analyticsHandler.TopProducts)
	dash.Get("/customers", analyticsHandler.CustomerMetrics)
	dash.Get("/profitability", analyticsHandler.Profitability)

	// AI
	aiHandler := NewAIHandler(deps.AIUC)
	ai := protected.Group("/ai")
	ai.Post("/supplier-analysis", aiHandler.AnalyzeSupplier)
	ai.Post("/sector-trends", aiHandler.SectorTrends)
	ai.Post("/product-advice", aiHandler.ProductAdvice)
}
