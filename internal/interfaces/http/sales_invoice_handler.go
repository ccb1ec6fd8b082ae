package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tanerp/internal/application/billing"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/domain"
)

// SalesInvoiceHandler maneja las facturas de venta (protegido).
type SalesInvoiceHandler struct {
	uc  *billing.SalesInvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewSalesInvoiceHandler construye el handler.
func NewSalesInvoiceHandler(uc *billing.SalesInvoiceUseCase, pdf *billing.PDFUseCase) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{uc: uc, pdf: pdf}
}

// List GET /api/sales-invoices
func (h *SalesInvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// NextNumber GET /api/sales-invoices/next-number
func (h *SalesInvoiceHandler) NextNumber(c *fiber.Ctx) error {
	no, err := h.uc.NextInvoiceNo(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"invoiceNo": no})
}

// GetByID GET /api/sales-invoices/:id
func (h *SalesInvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(inv)
}

// Create POST /api/sales-invoices
// Guarda un borrador nuevo (o actualiza si el documento trae id).
func (h *SalesInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.SalesInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.uc.SaveDraft(c.UserContext(), in)
	if err != nil {
		return h.mapSaveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// Update PUT /api/sales-invoices/:id
func (h *SalesInvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.SalesInvoiceRequest
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

// Post POST /api/sales-invoices/:id/post
// Contabiliza el documento enviado; con id "new" crea y contabiliza de una vez.
func (h *SalesInvoiceHandler) Post(c *fiber.Ctx) error {
	var in dto.SalesInvoiceRequest
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

// SetStatus POST /api/sales-invoices/:id/status
// Transición directa desde la vista de lista (POSTED, CANCELLED o VOID).
func (h *SalesInvoiceHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.uc.SetStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return h.mapSaveError(c, err)
	}
	return c.JSON(inv)
}

// PDF GET /api/sales-invoices/:id/pdf
func (h *SalesInvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.InvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}

// mapSaveError traduce los errores del ciclo de vida de la factura a HTTP.
func (h *SalesInvoiceHandler) mapSaveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente y datos de la factura son requeridos"})
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
