package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	return &dto.TreatmentResponse{
		ID:          treatment.ID,
		Type:        treatment.Type,
		Name:        treatment.Name,
		Description: treatment.Description,
		Price:       treatment.Price,
		CreatedAt:   treatment.CreatedAt,
		UpdatedAt:   treatment.UpdatedAt,
	}
}

func TreatmentsToResponses(treatments []entity.Treatment) []dto.TreatmentResponse {
	responses := make([]dto.TreatmentResponse, 0, len(treatments))
	for i := range treatments {
		responses = append(responses, *TreatmentToResponse(&treatments[i]))
	}
	return responses
}
