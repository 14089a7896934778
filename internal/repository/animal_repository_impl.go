package repository

import (
	"context"
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type animalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) domainRepo.AnimalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) Create(ctx context.Context, animal *entity.Animal) error {
	err := r.db.WithContext(ctx).Create(animal).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func (r *animalRepository) FindAll(ctx context.Context) ([]entity.Animal, error) {
	var animals []entity.Animal
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Animal, error) {
	var animal entity.Animal
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&animal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) FindByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (*entity.Animal, error) {
	var animal entity.Animal
	err := r.db.WithContext(ctx).Where("name = ? AND owner_id = ?", name, ownerID).First(&animal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Animal{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *animalRepository) Update(ctx context.Context, animal *entity.Animal) error {
	err := r.db.WithContext(ctx).Save(animal).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func (r *animalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Animal{}).Error
}
