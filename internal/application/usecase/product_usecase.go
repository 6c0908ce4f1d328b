package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos. El stock se fija solo
// al crear; después únicamente lo mueve la reconciliación de facturas.
// El borrado es lógico: la fila queda marcada y sale de los listados.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, supplierRepo: supplierRepo}
}

// Create crea el producto con su stock inicial.
func (uc *ProductUseCase) Create(scope access.Scope, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.SupplierID == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		SupplierID:    in.SupplierID,
		Name:          in.Name,
		SalePrice:     in.SalePrice,
		PurchasePrice: in.PurchasePrice,
		Tax:           in.Tax,
		Stock:         in.Stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID carga un producto del alcance del actor.
func (uc *ProductUseCase) GetByID(scope access.Scope, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil || product.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(product.TenantID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update modifica datos del producto (sin Stock).
func (uc *ProductUseCase) Update(scope access.Scope, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil || product.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(product.TenantID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil || supplier == nil {
			return nil, domain.ErrNotFound
		}
		if supplier.TenantID != product.TenantID {
			return nil, domain.ErrForbidden
		}
		product.SupplierID = *in.SupplierID
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.Tax != nil {
		product.Tax = *in.Tax
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete marca el producto como eliminado (borrado lógico): las facturas
// históricas siguen referenciándolo.
func (uc *ProductUseCase) Delete(scope access.Scope, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil || product.IsDeleted {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(product.TenantID); err != nil {
		return err
	}
	return uc.productRepo.SoftDelete(id)
}

// List productos del alcance del actor, paginados.
func (uc *ProductUseCase) List(scope access.Scope, tenantID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(scope.TenantFilter(tenantID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(products, page), nil
}

// SearchByName busca productos por nombre (coincidencia parcial).
func (uc *ProductUseCase) SearchByName(scope access.Scope, tenantID, name string) (*dto.ProductListResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.productRepo.SearchByName(scope.TenantFilter(tenantID), name)
	if err != nil {
		return nil, err
	}
	return toProductList(products, dto.PageRequest{}), nil
}

// ListPublic listado limitado sin autenticación.
func (uc *ProductUseCase) ListPublic() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListPublic(20)
	if err != nil {
		return nil, err
	}
	return toProductList(products, dto.PageRequest{Limit: 20}), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		SupplierID:    p.SupplierID,
		Name:          p.Name,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Tax:           p.Tax,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductList(products []*entity.Product, page dto.PageRequest) *dto.ProductListResponse {
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out
}
