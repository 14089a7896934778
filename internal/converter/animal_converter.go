package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

func AnimalToResponse(animal *entity.Animal) *dto.AnimalResponse {
	return &dto.AnimalResponse{
		ID:        animal.ID,
		Name:      animal.Name,
		Species:   animal.Species,
		Breed:     animal.Breed,
		Age:       animal.Age,
		Status:    string(animal.Status),
		OwnerID:   animal.OwnerID,
		CreatedAt: animal.CreatedAt,
		UpdatedAt: animal.UpdatedAt,
	}
}

func AnimalsToResponses(animals []entity.Animal) []dto.AnimalResponse {
	responses := make([]dto.AnimalResponse, 0, len(animals))
	for i := range animals {
		responses = append(responses, *AnimalToResponse(&animals[i]))
	}
	return responses
}
