package repository

import (
	"context"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error
	FindAll(ctx context.Context) ([]entity.Animal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Animal, error)
	FindByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (*entity.Animal, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, animal *entity.Animal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
