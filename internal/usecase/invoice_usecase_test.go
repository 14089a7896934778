package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type invoiceFixture struct {
	usecase  InvoiceUsecase
	invoices *fakeInvoiceRepo
	renderer *fakeRenderer
	mailer   *fakeMailer
	invoice  entity.Invoice
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	owners := newFakeOwnerRepo()
	invoices := newFakeInvoiceRepo()
	renderer := &fakeRenderer{document: []byte("%PDF-1.4 fake")}
	mailer := &fakeMailer{}

	owner := &entity.Owner{Name: "Marta López", DNI: "11111111A", Address: "Calle Mayor 1", Phone: "600000000", Email: "marta@example.com"}
	if err := owners.Create(context.Background(), owner); err != nil {
		t.Fatalf("seed owner: %v", err)
	}

	invoice := &entity.Invoice{
		AppointmentID: uuid.New(),
		OwnerID:       owner.ID,
		Treatments:    "Vacunación",
		TotalPrice:    decimal.NewFromFloat(30.0),
		PaymentMethod: entity.PaymentMethodCash,
	}
	if err := invoices.Create(context.Background(), invoice); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}

	return &invoiceFixture{
		usecase:  NewInvoiceUsecase(log, invoices, owners, renderer, mailer),
		invoices: invoices,
		renderer: renderer,
		mailer:   mailer,
		invoice:  *invoice,
	}
}

func TestPayInvoiceIsIdempotent(t *testing.T) {
	f := newInvoiceFixture(t)

	resp, err := f.usecase.Pay(context.Background(), f.invoice.ID)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if !resp.Paid {
		t.Fatalf("invoice not marked paid")
	}

	if _, err := f.usecase.Pay(context.Background(), f.invoice.ID); err != nil {
		t.Fatalf("second pay: %v", err)
	}
	if f.invoices.markPaidCalls != 1 {
		t.Fatalf("MarkPaid called %d times, want 1", f.invoices.markPaidCalls)
	}
}

func TestInvoiceListFilterByPaid(t *testing.T) {
	f := newInvoiceFixture(t)

	if _, err := f.usecase.Pay(context.Background(), f.invoice.ID); err != nil {
		t.Fatalf("pay: %v", err)
	}

	unpaidOnly := false
	result, err := f.usecase.GetAll(context.Background(), &unpaidOnly)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 0 {
		t.Fatalf("expected no unpaid invoices, got %d", result.Total)
	}

	paidOnly := true
	result, err = f.usecase.GetAll(context.Background(), &paidOnly)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected one paid invoice, got %d", result.Total)
	}
}

func TestDownloadInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	document, err := f.usecase.Download(context.Background(), f.invoice.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if !bytes.Equal(document, f.renderer.document) {
		t.Fatalf("download did not return the rendered document")
	}
}

func TestSendInvoiceEmail(t *testing.T) {
	f := newInvoiceFixture(t)

	if err := f.usecase.SendEmail(context.Background(), f.invoice.ID, "marta@example.com"); err != nil {
		t.Fatalf("send email: %v", err)
	}

	if f.mailer.sends != 1 {
		t.Fatalf("expected one send, got %d", f.mailer.sends)
	}
	if f.mailer.to != "marta@example.com" {
		t.Fatalf("sent to %s", f.mailer.to)
	}
	if wantName := fmt.Sprintf("invoice-%s.pdf", f.invoice.ID); f.mailer.filename != wantName {
		t.Fatalf("attachment named %s, want %s", f.mailer.filename, wantName)
	}
	if !bytes.Equal(f.mailer.attachment, f.renderer.document) {
		t.Fatalf("attachment is not the rendered document")
	}
}

func TestInvoiceNotFound(t *testing.T) {
	f := newInvoiceFixture(t)

	if _, err := f.usecase.Pay(context.Background(), uuid.New()); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
	if _, err := f.usecase.Download(context.Background(), uuid.New()); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}
