package purchasing

import (
	"context"

	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repos de compras. Cualquier error en fn hace rollback de todas las
// escrituras (cabecera, líneas y ajustes de stock).
type TxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		productRepo repository.ProductRepository,
	) error) error
}
