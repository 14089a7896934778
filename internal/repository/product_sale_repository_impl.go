package repository

import (
	"context"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type productSaleRepository struct {
	db *gorm.DB
}

func NewProductSaleRepository(db *gorm.DB) domainRepo.ProductSaleRepository {
	return &productSaleRepository{db: db}
}

func (r *productSaleRepository) Create(ctx context.Context, sale *entity.ProductSale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *productSaleRepository) FindAll(ctx context.Context) ([]entity.ProductSale, error) {
	var sales []entity.ProductSale
	if err := r.db.WithContext(ctx).Order("sold_at DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
