package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		Date:             appointment.Date,
		Time:             appointment.Time,
		Treatment:        appointment.Treatment,
		Reason:           appointment.Reason,
		ConsultationRoom: appointment.Room,
		OwnerID:          appointment.OwnerID,
		AnimalID:         appointment.AnimalID,
		Completed:        appointment.Completed,
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
