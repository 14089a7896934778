package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

func OwnerToResponse(owner *entity.Owner) *dto.OwnerResponse {
	return &dto.OwnerResponse{
		ID:        owner.ID,
		Name:      owner.Name,
		DNI:       owner.DNI,
		Address:   owner.Address,
		Phone:     owner.Phone,
		Email:     owner.Email,
		CreatedAt: owner.CreatedAt,
		UpdatedAt: owner.UpdatedAt,
	}
}

func OwnersToResponses(owners []entity.Owner) []dto.OwnerResponse {
	responses := make([]dto.OwnerResponse, 0, len(owners))
	for i := range owners {
		responses = append(responses, *OwnerToResponse(&owners[i]))
	}
	return responses
}
