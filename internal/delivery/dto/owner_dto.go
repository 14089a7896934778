package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateOwnerRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	DNI     string `json:"dni" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

type UpdateOwnerRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	DNI     string `json:"dni" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

// Response DTOs

type OwnerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DNI       string    `json:"dni"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OwnerListResponse struct {
	Owners []OwnerResponse `json:"owners"`
	Total  int             `json:"total"`
}
