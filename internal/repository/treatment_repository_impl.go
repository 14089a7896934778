package repository

import (
	"context"
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type treatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) domainRepo.TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *entity.Treatment) error {
	err := r.db.WithContext(ctx).Create(treatment).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func (r *treatmentRepository) FindAll(ctx context.Context) ([]entity.Treatment, error) {
	var treatments []entity.Treatment
	if err := r.db.WithContext(ctx).Order("type ASC, name ASC").Find(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) FindByName(ctx context.Context, name string) (*entity.Treatment, error) {
	var treatment entity.Treatment
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&treatment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &treatment, nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *entity.Treatment) error {
	err := r.db.WithContext(ctx).Save(treatment).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func (r *treatmentRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&entity.Treatment{})
	return result.RowsAffected, result.Error
}
