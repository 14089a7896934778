package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            invoice.ID,
		AppointmentID: invoice.AppointmentID,
		OwnerID:       invoice.OwnerID,
		Treatments:    invoice.Treatments,
		TotalPrice:    invoice.TotalPrice,
		PaymentMethod: string(invoice.PaymentMethod),
		Paid:          invoice.Paid,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}

func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, *InvoiceToResponse(&invoices[i]))
	}
	return responses
}
