package repository

import (
	"context"
	"errors"

	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ownerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) domainRepo.OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	err := r.db.WithContext(ctx).Create(owner).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func (r *ownerRepository) FindAll(ctx context.Context) ([]entity.Owner, error) {
	var owners []entity.Owner
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	var owner entity.Owner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByDNI(ctx context.Context, dni string) (*entity.Owner, error) {
	var owner entity.Owner
	err := r.db.WithContext(ctx).Where("dni = ?", dni).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) Search(ctx context.Context, filter domainRepo.OwnerFilter) ([]entity.Owner, error) {
	query := r.db.WithContext(ctx).Model(&entity.Owner{})
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}
	if filter.DNI != "" {
		query = query.Where("dni = ?", filter.DNI)
	}
	if filter.Address != "" {
		query = query.Where("address = ?", filter.Address)
	}
	if filter.Phone != "" {
		query = query.Where("phone = ?", filter.Phone)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var owners []entity.Owner
	if err := query.Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	err := r.db.WithContext(ctx).Save(owner).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func (r *ownerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Owner{}).Error
}
