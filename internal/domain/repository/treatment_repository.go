package repository

import (
	"context"

	"vetclinic-backend/internal/domain/entity"
)

type TreatmentRepository interface {
	Create(ctx context.Context, treatment *entity.Treatment) error
	FindAll(ctx context.Context) ([]entity.Treatment, error)
	FindByName(ctx context.Context, name string) (*entity.Treatment, error)
	Update(ctx context.Context, treatment *entity.Treatment) error
	// DeleteByName reports affected rows so callers can distinguish a
	// missing catalog entry.
	DeleteByName(ctx context.Context, name string) (int64, error)
}
