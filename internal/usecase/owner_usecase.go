package usecase

import (
	"context"
	"errors"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrOwnerNotFound        = errors.New("owner not found")
	ErrDNIAlreadyRegistered = errors.New("dni already registered")
)

type OwnerUsecase interface {
	Create(ctx context.Context, req *dto.CreateOwnerRequest) (*dto.OwnerResponse, error)
	GetAll(ctx context.Context) (*dto.OwnerListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OwnerResponse, error)
	Search(ctx context.Context, filter repository.OwnerFilter) (*dto.OwnerListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOwnerRequest) (*dto.OwnerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ownerUsecase struct {
	log       *logrus.Logger
	ownerRepo repository.OwnerRepository
}

func NewOwnerUsecase(log *logrus.Logger, ownerRepo repository.OwnerRepository) OwnerUsecase {
	return &ownerUsecase{
		log:       log,
		ownerRepo: ownerRepo,
	}
}

func (u *ownerUsecase) Create(ctx context.Context, req *dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	existing, err := u.ownerRepo.FindByDNI(ctx, req.DNI)
	if err != nil {
		u.log.Warnf("Failed to check DNI %s: %+v", req.DNI, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDNIAlreadyRegistered
	}

	owner := &entity.Owner{
		Name:    req.Name,
		DNI:     req.DNI,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := u.ownerRepo.Create(ctx, owner); err != nil {
		// The unique index is the arbiter under concurrent registrations
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDNIAlreadyRegistered
		}
		u.log.Warnf("Failed to create owner: %+v", err)
		return nil, err
	}

	u.log.Infof("Owner created: id=%s, dni=%s", owner.ID, owner.DNI)
	return converter.OwnerToResponse(owner), nil
}

func (u *ownerUsecase) GetAll(ctx context.Context) (*dto.OwnerListResponse, error) {
	owners, err := u.ownerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.OwnerListResponse{
		Owners: converter.OwnersToResponses(owners),
		Total:  len(owners),
	}, nil
}

func (u *ownerUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.OwnerResponse, error) {
	owner, err := u.ownerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *ownerUsecase) Search(ctx context.Context, filter repository.OwnerFilter) (*dto.OwnerListResponse, error) {
	owners, err := u.ownerRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.OwnerListResponse{
		Owners: converter.OwnersToResponses(owners),
		Total:  len(owners),
	}, nil
}

func (u *ownerUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOwnerRequest) (*dto.OwnerResponse, error) {
	owner, err := u.ownerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	if req.DNI != owner.DNI {
		existing, err := u.ownerRepo.FindByDNI(ctx, req.DNI)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDNIAlreadyRegistered
		}
	}

	owner.Name = req.Name
	owner.DNI = req.DNI
	owner.Address = req.Address
	owner.Phone = req.Phone
	owner.Email = req.Email

	if err := u.ownerRepo.Update(ctx, owner); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDNIAlreadyRegistered
		}
		return nil, err
	}

	return converter.OwnerToResponse(owner), nil
}

// Delete removes the owner; the store cascades to its animals,
// appointments and invoices.
func (u *ownerUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	owner, err := u.ownerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if owner == nil {
		return ErrOwnerNotFound
	}

	if err := u.ownerRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete owner %s: %+v", id, err)
		return err
	}

	u.log.Infof("Owner deleted: id=%s, dni=%s", id, owner.DNI)
	return nil
}
