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
	ErrAnimalNotFound      = errors.New("animal not found")
	ErrAnimalAlreadyExists = errors.New("animal already exists for this owner")
)

// AnimalCheck is an extra validation applied to a registration before the
// base checks. Checks compose as a flat list instead of validator
// subclasses.
type AnimalCheck func(req *dto.CreateAnimalRequest) error

type AnimalUsecase interface {
	Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error)
	GetAll(ctx context.Context) (*dto.AnimalListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error)
	MarkDeceased(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type animalUsecase struct {
	log         *logrus.Logger
	animalRepo  repository.AnimalRepository
	ownerRepo   repository.OwnerRepository
	extraChecks []AnimalCheck
}

func NewAnimalUsecase(
	log *logrus.Logger,
	animalRepo repository.AnimalRepository,
	ownerRepo repository.OwnerRepository,
	extraChecks ...AnimalCheck,
) AnimalUsecase {
	return &animalUsecase{
		log:         log,
		animalRepo:  animalRepo,
		ownerRepo:   ownerRepo,
		extraChecks: extraChecks,
	}
}

func (u *animalUsecase) Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	for _, check := range u.extraChecks {
		if err := check(req); err != nil {
			return nil, err
		}
	}

	owner, err := u.ownerRepo.FindByID(ctx, req.OwnerID)
	if err != nil {
		u.log.Warnf("Failed to check owner %s: %+v", req.OwnerID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	existing, err := u.animalRepo.FindByNameAndOwner(ctx, req.Name, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAnimalAlreadyExists
	}

	animal := &entity.Animal{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
		Status:  entity.AnimalStatusAlive,
		OwnerID: req.OwnerID,
	}

	if err := u.animalRepo.Create(ctx, animal); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAnimalAlreadyExists
		}
		u.log.Warnf("Failed to create animal: %+v", err)
		return nil, err
	}

	u.log.Infof("Animal created: id=%s, name=%s, owner=%s", animal.ID, animal.Name, animal.OwnerID)
	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) GetAll(ctx context.Context) (*dto.AnimalListResponse, error) {
	animals, err := u.animalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AnimalListResponse{
		Animals: converter.AnimalsToResponses(animals),
		Total:   len(animals),
	}, nil
}

func (u *animalUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error) {
	animal, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) Count(ctx context.Context) (int64, error) {
	return u.animalRepo.Count(ctx)
}

func (u *animalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error) {
	animal, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	if req.Name != animal.Name {
		existing, err := u.animalRepo.FindByNameAndOwner(ctx, req.Name, animal.OwnerID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrAnimalAlreadyExists
		}
	}

	animal.Name = req.Name
	animal.Species = req.Species
	animal.Breed = req.Breed
	animal.Age = req.Age

	if err := u.animalRepo.Update(ctx, animal); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAnimalAlreadyExists
		}
		return nil, err
	}

	return converter.AnimalToResponse(animal), nil
}

// MarkDeceased is a one-way status flip; repeating it is harmless.
func (u *animalUsecase) MarkDeceased(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error) {
	animal, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	animal.MarkDeceased()
	if err := u.animalRepo.Update(ctx, animal); err != nil {
		return nil, err
	}

	u.log.Infof("Animal marked deceased: id=%s, name=%s", animal.ID, animal.Name)
	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	animal, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if animal == nil {
		return ErrAnimalNotFound
	}

	return u.animalRepo.Delete(ctx, id)
}
