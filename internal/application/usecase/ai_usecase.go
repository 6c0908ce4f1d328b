package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/ports"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// AIUseCase orquesta los consejos asistidos por IA: confiabilidad de
// proveedores, tendencias del sector y recomendaciones de catálogo.
// Aplica un timeout de 10 segundos en cada llamada al LLM para evitar
// que las latencias externas bloqueen los goroutines del servidor.
// Las respuestas son consultivas: nunca mutan estado del negocio.
type AIUseCase struct {
	llm          ports.LLMService
	companyRepo  repository.CompanyRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseInvoiceRepository
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(
	llm ports.LLMService,
	companyRepo repository.CompanyRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseInvoiceRepository,
) *AIUseCase {
	return &AIUseCase{
		llm:          llm,
		companyRepo:  companyRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
	}
}

const aiTimeout = 10 * time.Second

// AnalyzeSupplier evalúa la confiabilidad de un proveedor a partir de su
// historial de compras.
func (uc *AIUseCase) AnalyzeSupplier(ctx context.Context, scope access.Scope, in dto.SupplierAnalysisRequest) (*dto.SupplierAnalysisDTO, error) {
	if in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(supplier.TenantID); err != nil {
		return nil, err
	}
	count, err := uc.purchaseRepo.CountBySupplier(supplier.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	system := "Eres un asesor financiero para pequeñas empresas colombianas. Responde en español, breve y concreto."
	prompt := fmt.Sprintf(
		"Analiza la confiabilidad del proveedor %q (identificación %s). Registra %d facturas de compra con nosotros. Da un veredicto corto y recomendaciones.",
		supplier.Name, supplier.Identification, count,
	)
	analysis, err := uc.llm.Complete(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("análisis de proveedor: %w", err)
	}
	return &dto.SupplierAnalysisDTO{
		SupplierID:    supplier.ID,
		SupplierName:  supplier.Name,
		PurchaseCount: count,
		Analysis:      analysis,
	}, nil
}

// SectorTrends genera tendencias y consejos para el sector de la
// empresa del actor (o el indicado en el request).
func (uc *AIUseCase) SectorTrends(ctx context.Context, scope access.Scope, in dto.SectorTrendsRequest) (*dto.SectorTrendsDTO, error) {
	sector := in.Sector
	if sector == "" && scope.TenantID != "" {
		company, err := uc.companyRepo.GetByID(scope.TenantID)
		if err != nil || company == nil {
			return nil, domain.ErrNotFound
		}
		sector = company.Sector
	}
	if sector == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	system := "Eres un analista de mercado para pequeñas empresas colombianas. Responde en español."
	prompt := fmt.Sprintf("Resume las tendencias actuales del sector %q en Colombia y da tres consejos accionables.", sector)
	trends, err := uc.llm.Complete(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("tendencias del sector: %w", err)
	}
	return &dto.SectorTrendsDTO{Sector: sector, Trends: trends}, nil
}

// ProductAdvice recomienda acciones sobre el catálogo e inventario del
// tenant del actor.
func (uc *AIUseCase) ProductAdvice(ctx context.Context, scope access.Scope) (*dto.ProductAdviceDTO, error) {
	products, err := uc.productRepo.List(scope.TenantFilter(""), 50, 0)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}

	var sb strings.Builder
	for _, p := range products {
		fmt.Fprintf(&sb, "- %s: stock %d, precio venta %s, precio compra %s\n",
			p.Name, p.Stock, p.SalePrice.String(), p.PurchasePrice.String())
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	system := "Eres un asesor de inventario para pequeñas empresas. Responde en español, breve y concreto."
	prompt := "Con este catálogo, recomienda qué reabastecer, qué liquidar y qué precios revisar:\n" + sb.String()
	advice, err := uc.llm.Complete(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("recomendaciones de catálogo: %w", err)
	}
	return &dto.ProductAdviceDTO{Advice: advice}, nil
}
