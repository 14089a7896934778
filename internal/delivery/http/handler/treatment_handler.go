package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type TreatmentHandler struct {
	treatmentUsecase usecase.TreatmentUsecase
	validator        *validator.CustomValidator
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

// Create handles treatment catalog entry creation
// @Summary Create a treatment
// @Tags Treatments
// @Accept json
// @Produce json
// @Param request body dto.CreateTreatmentRequest true "Create Treatment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /tratamientos [post]
func (h *TreatmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentAlreadyExists:
			response.BadRequest(w, "Treatment already exists")
		default:
			response.InternalServerError(w, "Failed to create treatment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment created successfully", treatment)
}

// GetAll handles listing the treatment catalog
// @Summary List treatments
// @Tags Treatments
// @Produce json
// @Success 200 {object} response.Response
// @Router /tratamientos [get]
func (h *TreatmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatmentUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get treatments")
		return
	}

	response.Success(w, http.StatusOK, "Treatments retrieved successfully", treatments)
}

// GetByName handles getting a treatment by its unique name
// @Summary Get treatment by name
// @Tags Treatments
// @Produce json
// @Param name path string true "Treatment name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tratamientos/{name} [get]
func (h *TreatmentHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	treatment, err := h.treatmentUsecase.GetByName(r.Context(), name)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to get treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment retrieved successfully", treatment)
}

// Update handles treatment update by name
// @Summary Update a treatment
// @Tags Treatments
// @Accept json
// @Produce json
// @Param name path string true "Treatment name"
// @Param request body dto.UpdateTreatmentRequest true "Update Treatment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tratamientos/{name} [put]
func (h *TreatmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req dto.UpdateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.Update(r.Context(), name, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to update treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment updated successfully", treatment)
}

// Delete handles treatment deletion by name
// @Summary Delete a treatment
// @Tags Treatments
// @Param name path string true "Treatment name"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /tratamientos/{name} [delete]
func (h *TreatmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.treatmentUsecase.Delete(r.Context(), name); err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to delete treatment")
		}
		return
	}

	response.NoContent(w)
}
