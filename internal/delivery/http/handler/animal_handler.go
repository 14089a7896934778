package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AnimalHandler struct {
	animalUsecase usecase.AnimalUsecase
	validator     *validator.CustomValidator
}

func NewAnimalHandler(animalUsecase usecase.AnimalUsecase, validator *validator.CustomValidator) *AnimalHandler {
	return &AnimalHandler{
		animalUsecase: animalUsecase,
		validator:     validator,
	}
}

// Create handles animal registration
// @Summary Register a new animal
// @Tags Animals
// @Accept json
// @Produce json
// @Param request body dto.CreateAnimalRequest true "Create Animal Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /animals [post]
func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	animal, err := h.animalUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		case usecase.ErrAnimalAlreadyExists:
			response.BadRequest(w, "Animal already exists for this owner")
		case usecase.ErrPermitRequired:
			response.BadRequest(w, "This species requires a permit")
		default:
			response.InternalServerError(w, "Failed to create animal")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Animal created successfully", animal)
}

// GetAll handles listing all animals
// @Summary List animals
// @Tags Animals
// @Produce json
// @Success 200 {object} response.Response
// @Router /animals [get]
func (h *AnimalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	animals, err := h.animalUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get animals")
		return
	}

	response.Success(w, http.StatusOK, "Animals retrieved successfully", animals)
}

// Count handles the patient counter
// @Summary Count registered animals
// @Tags Animals
// @Produce json
// @Success 200 {object} response.Response
// @Router /animals/count [get]
func (h *AnimalHandler) Count(w http.ResponseWriter, r *http.Request) {
	total, err := h.animalUsecase.Count(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to count animals")
		return
	}

	response.Success(w, http.StatusOK, "Animals counted successfully", dto.AnimalCountResponse{TotalAnimals: total})
}

// GetByID handles getting an animal by ID
// @Summary Get animal by ID
// @Tags Animals
// @Produce json
// @Param id path string true "Animal ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid animal ID")
		return
	}

	animal, err := h.animalUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		default:
			response.InternalServerError(w, "Failed to get animal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animal retrieved successfully", animal)
}

// Update handles animal update
// @Summary Update an animal
// @Tags Animals
// @Accept json
// @Produce json
// @Param id path string true "Animal ID"
// @Param request body dto.UpdateAnimalRequest true "Update Animal Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /animals/{id} [put]
func (h *AnimalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid animal ID")
		return
	}

	var req dto.UpdateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	animal, err := h.animalUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		case usecase.ErrAnimalAlreadyExists:
			response.BadRequest(w, "Animal already exists for this owner")
		default:
			response.InternalServerError(w, "Failed to update animal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animal updated successfully", animal)
}

// MarkDeceased handles the life-status flip
// @Summary Mark an animal as deceased
// @Tags Animals
// @Produce json
// @Param id path string true "Animal ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /animals/{id}/deceased [patch]
func (h *AnimalHandler) MarkDeceased(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid animal ID")
		return
	}

	animal, err := h.animalUsecase.MarkDeceased(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		default:
			response.InternalServerError(w, "Failed to update animal status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animal marked as deceased", animal)
}

// Delete handles animal deletion
// @Summary Delete an animal
// @Tags Animals
// @Param id path string true "Animal ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /animals/{id} [delete]
func (h *AnimalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid animal ID")
		return
	}

	if err := h.animalUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		default:
			response.InternalServerError(w, "Failed to delete animal")
		}
		return
	}

	response.NoContent(w)
}
