package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
)

// InvoicePDFGenerator puerto del generador de la representación imprimible
// de una factura de venta (implementado en infrastructure/pdf con Maroto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.SalesInvoice) ([]byte, error)
}

// PDFUseCase genera el PDF de una factura de venta almacenada.
type PDFUseCase struct {
	repo      repository.SalesInvoiceRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.SalesInvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// InvoicePDF busca la factura y retorna los bytes del PDF junto con un
// nombre de archivo sugerido.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("%s.pdf", inv.InvoiceNo), nil
}
