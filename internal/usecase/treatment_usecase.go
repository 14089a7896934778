package usecase

import (
	"context"
	"errors"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrTreatmentNotFound      = errors.New("treatment not found")
	ErrTreatmentAlreadyExists = errors.New("treatment already exists")
)

type TreatmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error)
	GetAll(ctx context.Context) (*dto.TreatmentListResponse, error)
	GetByName(ctx context.Context, name string) (*dto.TreatmentResponse, error)
	Update(ctx context.Context, name string, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error)
	Delete(ctx context.Context, name string) error
}

type treatmentUsecase struct {
	log           *logrus.Logger
	treatmentRepo repository.TreatmentRepository
	catalog       service.PriceCatalog
}

func NewTreatmentUsecase(log *logrus.Logger, treatmentRepo repository.TreatmentRepository, catalog service.PriceCatalog) TreatmentUsecase {
	return &treatmentUsecase{
		log:           log,
		treatmentRepo: treatmentRepo,
		catalog:       catalog,
	}
}

func (u *treatmentUsecase) Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatment := &entity.Treatment{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := u.treatmentRepo.Create(ctx, treatment); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrTreatmentAlreadyExists
		}
		u.log.Warnf("Failed to create treatment: %+v", err)
		return nil, err
	}

	u.catalog.Invalidate(ctx)
	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) GetAll(ctx context.Context) (*dto.TreatmentListResponse, error) {
	treatments, err := u.treatmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.TreatmentListResponse{
		Treatments: converter.TreatmentsToResponses(treatments),
		Total:      len(treatments),
	}, nil
}

func (u *treatmentUsecase) GetByName(ctx context.Context, name string) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) Update(ctx context.Context, name string, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	treatment.Type = req.Type
	treatment.Description = req.Description
	treatment.Price = req.Price

	if err := u.treatmentRepo.Update(ctx, treatment); err != nil {
		return nil, err
	}

	u.catalog.Invalidate(ctx)
	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) Delete(ctx context.Context, name string) error {
	affected, err := u.treatmentRepo.DeleteByName(ctx, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTreatmentNotFound
	}

	u.catalog.Invalidate(ctx)
	return nil
}
