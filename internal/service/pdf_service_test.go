package service

import (
	"bytes"
	"testing"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestRenderInvoiceProducesPDF(t *testing.T) {
	renderer := NewPDFInvoiceRenderer()

	invoice := &entity.Invoice{
		ID:            uuid.New(),
		AppointmentID: uuid.New(),
		OwnerID:       uuid.New(),
		Treatments:    "Vacunación, Limpieza bucal",
		TotalPrice:    decimal.NewFromFloat(130.0),
		PaymentMethod: entity.PaymentMethodCard,
	}
	owner := &entity.Owner{
		ID:   invoice.OwnerID,
		Name: "Marta López",
		DNI:  "11111111A",
	}

	document, err := renderer.Render(invoice, owner)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(document) == 0 {
		t.Fatalf("empty document")
	}
	if !bytes.HasPrefix(document, []byte("%PDF")) {
		t.Fatalf("document does not start with a PDF header")
	}
}
