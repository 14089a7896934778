package repository

import (
	"context"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// OwnerFilter narrows an owner search; empty fields are ignored.
type OwnerFilter struct {
	Name    string
	DNI     string
	Address string
	Phone   string
	Email   string
}

type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.Owner) error
	FindAll(ctx context.Context) ([]entity.Owner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error)
	FindByDNI(ctx context.Context, dni string) (*entity.Owner, error)
	Search(ctx context.Context, filter OwnerFilter) ([]entity.Owner, error)
	Update(ctx context.Context, owner *entity.Owner) error
	Delete(ctx context.Context, id uuid.UUID) error
}
