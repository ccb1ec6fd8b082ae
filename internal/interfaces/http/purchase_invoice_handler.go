package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tanerp/internal/application/billing"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/domain"
)

// PurchaseInvoiceHandler maneja las facturas de compra (protegido).
// Contabilizar una compra suma las cantidades de las líneas al stock.
type PurchaseInvoiceHandler struct {
	uc *billing.PurchaseInvoiceUseCase
}

// NewPurchaseInvoiceHandler construye el handler.
func NewPurchaseInvoiceHandler(uc *billing.PurchaseInvoiceUseCase) *PurchaseInvoiceHandler {
	return &PurchaseInvoiceHandler{uc: uc}
}

// List GET /api/purchase-invoices
func (h *PurchaseInvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// NextNumber GET /api/purchase-invoices/next-number
func (h *PurchaseInvoiceHandler) NextNumber(c *fiber.Ctx) error {
	no, err := h.uc.NextInvoiceNo(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"invoiceNo": no})
}

// GetByID GET /api/purchase-invoices/:id
func (h *PurchaseInvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(inv)
}

// Create POST /api/purchase-invoices
func (h *PurchaseInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.uc.SaveDraft(c.UserContext(), in)
	if err != nil {
		return h.mapSaveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// Update PUT /api/purchase-invoices/:id
func (h *PurchaseInvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.PurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	inv, err := h.uc.SaveDraft(c.UserContext(), in)
	if err != nil {
		return h.mapSaveError(c, err)
	}
	return c.JSON(inv)
}

// Post POST /api/purchase-invoices/:id/post
// Contabiliza y ajusta stock; con id "new" crea y contabiliza de una vez.
func (h *PurchaseInvoiceHandler) Post(c *fiber.Ctx) error {
	var in dto.PurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if id := c.Params("id"); id != "new" {
		in.ID = id
	}
	inv, err := h.uc.Post(c.UserContext(), in)
	if err != nil {
		return h.mapSaveError(c, err)
	}
	return c.JSON(inv)
}

func (h *PurchaseInvoiceHandler) mapSaveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "proveedor y datos de la factura son requeridos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	case errors.Is(err, domain.ErrAlreadyPosted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_POSTED", Message: "la factura ya fue contabilizada"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la factura está en un estado terminal"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
