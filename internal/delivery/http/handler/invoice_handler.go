package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	invoiceUsecase usecase.InvoiceUsecase
	validator      *validator.CustomValidator
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUsecase, validator *validator.CustomValidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUsecase: invoiceUsecase,
		validator:      validator,
	}
}

// GetAll handles listing invoices, optionally filtered by payment state
// @Summary List invoices
// @Tags Invoices
// @Produce json
// @Param paid query bool false "Filter by payment state"
// @Success 200 {object} response.Response
// @Router /invoices [get]
func (h *InvoiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var paid *bool
	if raw := r.URL.Query().Get("paid"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "Invalid paid filter")
			return
		}
		paid = &value
	}

	invoices, err := h.invoiceUsecase.GetAll(r.Context(), paid)
	if err != nil {
		response.InternalServerError(w, "Failed to get invoices")
		return
	}

	response.Success(w, http.StatusOK, "Invoices retrieved successfully", invoices)
}

// GetByID handles getting an invoice by ID
// @Summary Get invoice by ID
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		default:
			response.InternalServerError(w, "Failed to get invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice retrieved successfully", invoice)
}

// Pay marks an invoice as paid; repeated calls are a no-op
// @Summary Pay an invoice
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /invoices/{id}/pay [put]
func (h *InvoiceHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceUsecase.Pay(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		default:
			response.InternalServerError(w, "Failed to pay invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice paid successfully", invoice)
}

// Download streams the invoice as a PDF document
// @Summary Download invoice PDF
// @Tags Invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /invoices/{id}/download [get]
func (h *InvoiceHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid invoice ID")
		return
	}

	document, err := h.invoiceUsecase.Download(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to render invoice")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

// SendEmail emails the invoice PDF to a recipient
// @Summary Email invoice PDF
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.SendInvoiceEmailRequest true "Send Invoice Email Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /invoices/{id}/send-email [post]
func (h *InvoiceHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid invoice ID")
		return
	}

	var req dto.SendInvoiceEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.invoiceUsecase.SendEmail(r.Context(), id, req.RecipientEmail); err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to send invoice email")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice sent successfully", nil)
}
