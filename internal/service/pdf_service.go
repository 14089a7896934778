package service

import (
	"bytes"
	"fmt"

	"vetclinic-backend/internal/domain/entity"

	"github.com/go-pdf/fpdf"
)

// InvoiceRenderer renders an invoice into a distributable document.
type InvoiceRenderer interface {
	Render(invoice *entity.Invoice, owner *entity.Owner) ([]byte, error)
}

type pdfInvoiceRenderer struct{}

func NewPDFInvoiceRenderer() InvoiceRenderer {
	return &pdfInvoiceRenderer{}
}

func (r *pdfInvoiceRenderer) Render(invoice *entity.Invoice, owner *entity.Owner) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Veterinary Clinic - Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	paidState := "Pending"
	if invoice.Paid {
		paidState = "Paid"
	}

	pdf.SetFont("Arial", "", 12)
	lines := []string{
		fmt.Sprintf("Invoice: %s", invoice.ID),
		fmt.Sprintf("Owner: %s (DNI %s)", owner.Name, owner.DNI),
		fmt.Sprintf("Treatments: %s", invoice.Treatments),
		fmt.Sprintf("Total: %s EUR", invoice.TotalPrice.StringFixed(2)),
		fmt.Sprintf("Payment method: %s", invoice.PaymentMethod),
		fmt.Sprintf("Payment state: %s", paidState),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
