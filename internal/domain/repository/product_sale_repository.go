package repository

import (
	"context"

	"vetclinic-backend/internal/domain/entity"
)

type ProductSaleRepository interface {
	Create(ctx context.Context, sale *entity.ProductSale) error
	FindAll(ctx context.Context) ([]entity.ProductSale, error)
}
