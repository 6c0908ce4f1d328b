package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/billing"
	"github.com/jhoicas/axia-erp/internal/application/purchasing"
	"github.com/jhoicas/axia-erp/internal/application/usecase"
)

// PublicHandler expone listados de solo lectura sin autenticación,
// acotados a los últimos registros.
type PublicHandler struct {
	productUC  *usecase.ProductUseCase
	userUC     *usecase.UserUseCase
	saleUC     *billing.SaleInvoiceUseCase
	purchaseUC *purchasing.PurchaseInvoiceUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(
	productUC *usecase.ProductUseCase,
	userUC *usecase.UserUseCase,
	saleUC *billing.SaleInvoiceUseCase,
	purchaseUC *purchasing.PurchaseInvoiceUseCase,
) *PublicHandler {
	return &PublicHandler{productUC: productUC, userUC: userUC, saleUC: saleUC, purchaseUC: purchaseUC}
}

func (h *PublicHandler) Products(c *fiber.Ctx) error {
	out, err := h.productUC.ListPublic()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PublicHandler) Users(c *fiber.Ctx) error {
	out, err := h.userUC.ListPublic()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PublicHandler) UserByID(c *fiber.Ctx) error {
	out, err := h.userUC.GetPublic(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PublicHandler) SaleInvoices(c *fiber.Ctx) error {
	out, err := h.saleUC.ListPublic()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PublicHandler) PurchaseInvoices(c *fiber.Ctx) error {
	out, err := h.purchaseUC.ListPublic()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
