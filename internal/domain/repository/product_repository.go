package repository

import (
	"context"

	"vetclinic-backend/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	// Search matches name and category as case-insensitive substrings;
	// empty arguments are ignored.
	Search(ctx context.Context, name, category string) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	DeleteByName(ctx context.Context, name string) (int64, error)
	// DecrementStock subtracts quantity only while enough stock remains and
	// reports affected rows: 0 means the sale must be rejected.
	DecrementStock(ctx context.Context, name string, quantity int) (int64, error)
}
