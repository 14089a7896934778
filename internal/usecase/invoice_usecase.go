package usecase

import (
	"context"
	"errors"
	"fmt"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceUsecase interface {
	GetAll(ctx context.Context, paid *bool) (*dto.InvoiceListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	Pay(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	Download(ctx context.Context, id uuid.UUID) ([]byte, error)
	SendEmail(ctx context.Context, id uuid.UUID, recipient string) error
}

type invoiceUsecase struct {
	log         *logrus.Logger
	invoiceRepo repository.InvoiceRepository
	ownerRepo   repository.OwnerRepository
	renderer    service.InvoiceRenderer
	mailer      service.Mailer
}

func NewInvoiceUsecase(
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	ownerRepo repository.OwnerRepository,
	renderer service.InvoiceRenderer,
	mailer service.Mailer,
) InvoiceUsecase {
	return &invoiceUsecase{
		log:         log,
		invoiceRepo: invoiceRepo,
		ownerRepo:   ownerRepo,
		renderer:    renderer,
		mailer:      mailer,
	}
}

func (u *invoiceUsecase) GetAll(ctx context.Context, paid *bool) (*dto.InvoiceListResponse, error) {
	invoices, err := u.invoiceRepo.FindAll(ctx, paid)
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceListResponse{
		Invoices: converter.InvoicesToResponses(invoices),
		Total:    len(invoices),
	}, nil
}

func (u *invoiceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToResponse(invoice), nil
}

// Pay marks the invoice paid. Paying twice is a no-op, not an error.
func (u *invoiceUsecase) Pay(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	if !invoice.Paid {
		if err := u.invoiceRepo.MarkPaid(ctx, id); err != nil {
			u.log.Warnf("Failed to mark invoice %s paid: %+v", id, err)
			return nil, err
		}
		invoice.Paid = true
		u.log.Infof("Invoice paid: id=%s", id)
	}

	return converter.InvoiceToResponse(invoice), nil
}

func (u *invoiceUsecase) Download(ctx context.Context, id uuid.UUID) ([]byte, error) {
	invoice, owner, err := u.invoiceWithOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	return u.renderer.Render(invoice, owner)
}

func (u *invoiceUsecase) SendEmail(ctx context.Context, id uuid.UUID, recipient string) error {
	invoice, owner, err := u.invoiceWithOwner(ctx, id)
	if err != nil {
		return err
	}

	document, err := u.renderer.Render(invoice, owner)
	if err != nil {
		return err
	}

	err = u.mailer.Send(
		recipient,
		"Veterinary Clinic Invoice",
		"Please find attached the invoice for your appointment.",
		document,
		fmt.Sprintf("invoice-%s.pdf", invoice.ID),
	)
	if err != nil {
		u.log.Warnf("Failed to email invoice %s to %s: %+v", id, recipient, err)
		return err
	}

	u.log.Infof("Invoice emailed: id=%s, recipient=%s", id, recipient)
	return nil
}

func (u *invoiceUsecase) invoiceWithOwner(ctx context.Context, id uuid.UUID) (*entity.Invoice, *entity.Owner, error) {
	invoice, err := u.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, ErrInvoiceNotFound
	}

	owner, err := u.ownerRepo.FindByID(ctx, invoice.OwnerID)
	if err != nil {
		return nil, nil, err
	}
	if owner == nil {
		return nil, nil, ErrOwnerNotFound
	}

	return invoice, owner, nil
}
