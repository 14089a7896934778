package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string    `json:"time" validate:"required,datetime=15:04"`
	Treatment string    `json:"treatment" validate:"required"`
	Reason    string    `json:"reason"`
	OwnerID   uuid.UUID `json:"owner_id" validate:"required"`
	AnimalID  uuid.UUID `json:"animal_id" validate:"required"`
}

type UpdateAppointmentRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Treatment string `json:"treatment" validate:"required"`
	Reason    string `json:"reason"`
}

type CompleteAppointmentRequest struct {
	Treatments    []string `json:"treatments" validate:"required,min=1"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=cash card transfer"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Treatment        string    `json:"treatment"`
	Reason           string    `json:"reason"`
	ConsultationRoom string    `json:"consultation_room"`
	OwnerID          uuid.UUID `json:"owner_id"`
	AnimalID         uuid.UUID `json:"animal_id"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
