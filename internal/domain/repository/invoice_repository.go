package repository

import (
	"context"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// FindAll filters by payment state when paid is non-nil.
	FindAll(ctx context.Context, paid *bool) ([]entity.Invoice, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	MarkPaid(ctx context.Context, id uuid.UUID) error
}
