package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/axia-erp/internal/application/analytics"
	"github.com/jhoicas/axia-erp/internal/application/auth"
	"github.com/jhoicas/axia-erp/internal/application/billing"
	"github.com/jhoicas/axia-erp/internal/application/purchasing"
	"github.com/jhoicas/axia-erp/internal/application/treasury"
	"github.com/jhoicas/axia-erp/internal/application/usecase"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	infraai "github.com/jhoicas/axia-erp/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/axia-erp/internal/infrastructure/pdf"
	"github.com/jhoicas/axia-erp/internal/infrastructure/postgres"
	"github.com/jhoicas/axia-erp/internal/infrastructure/ubl"
	httpRouter "github.com/jhoicas/axia-erp/internal/interfaces/http"
	"github.com/jhoicas/axia-erp/pkg/config"
	"github.com/jhoicas/axia-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewRevokedTokenRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleInvoiceRepository(pool)
	purchaseRepo := postgres.NewPurchaseInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	depositRepo := postgres.NewSupplierDepositRepository(pool)
	loanRepo := postgres.NewLoanRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, tokenRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.InitSuperAdminKey)

	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, companyRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, companyRepo)
	productUC := usecase.NewProductUseCase(productRepo, supplierRepo)

	// Facturación electrónica: XML UBL escrito a disco tras el commit.
	publisher := ubl.NewFilePublisher(cfg.Billing.XMLOutputDir, log)
	saleUC := billing.NewSaleInvoiceUseCase(
		txRunner, saleRepo, clientRepo, companyRepo, productRepo, publisher, log,
	)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(
		saleRepo, companyRepo, clientRepo, productRepo, pdfGenerator,
	)

	purchaseUC := purchasing.NewPurchaseInvoiceUseCase(
		txRunner, purchaseRepo, supplierRepo, companyRepo, productRepo,
	)

	paymentUC := treasury.NewPaymentUseCase(paymentRepo, saleRepo)
	depositUC := treasury.NewDepositUseCase(txRunner, depositRepo, supplierRepo, companyRepo)
	loanUC := treasury.NewLoanUseCase(txRunner, loanRepo, clientRepo, companyRepo, pdfGenerator)
	resetUC := treasury.NewBalanceResetUseCase(txRunner, companyRepo)
	auditUC := treasury.NewAuditUseCase(auditRepo)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(anthropicSvc, companyRepo, supplierRepo, productRepo, purchaseRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CompanyUC:   companyUC,
		ResetUC:     resetUC,
		ClientUC:    clientUC,
		SupplierUC:  supplierUC,
		ProductUC:   productUC,
		SaleUC:      saleUC,
		PDFUC:       pdfUC,
		PurchaseUC:  purchaseUC,
		PaymentUC:   paymentUC,
		DepositUC:   depositUC,
		LoanUC:      loanUC,
		AuditUC:     auditUC,
		DashboardUC: dashboardUC,
		AIUC:        aiUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	// Limpieza periódica de la lista de tokens revocados.
	purgeDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := tokenRepo.PurgeOlderThan(time.Now().Add(-entity.RevokedTokenTTL))
				if err != nil {
					log.Error().Err(err).Msg("purga de tokens revocados")
					continue
				}
				if n > 0 {
					log.Info().Int64("purged", n).Msg("tokens revocados purgados")
				}
			case <-purgeDone:
				return
			}
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(purgeDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
