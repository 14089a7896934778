package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAnimalRequest struct {
	Name    string    `json:"name" validate:"required,min=1"`
	Species string    `json:"species" validate:"required"`
	Breed   string    `json:"breed" validate:"required"`
	Age     int       `json:"age" validate:"gte=0"`
	OwnerID uuid.UUID `json:"owner_id" validate:"required"`
	// Permit is only required for species the clinic flags as needing
	// special handling (see usecase extra checks).
	Permit string `json:"permit"`
}

type UpdateAnimalRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Species string `json:"species" validate:"required"`
	Breed   string `json:"breed" validate:"required"`
	Age     int    `json:"age" validate:"gte=0"`
}

// Response DTOs

type AnimalResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	Status    string    `json:"status"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AnimalListResponse struct {
	Animals []AnimalResponse `json:"animals"`
	Total   int              `json:"total"`
}

type AnimalCountResponse struct {
	TotalAnimals int64 `json:"total_animals"`
}
