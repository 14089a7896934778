package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type OwnerHandler struct {
	ownerUsecase usecase.OwnerUsecase
	validator    *validator.CustomValidator
}

func NewOwnerHandler(ownerUsecase usecase.OwnerUsecase, validator *validator.CustomValidator) *OwnerHandler {
	return &OwnerHandler{
		ownerUsecase: ownerUsecase,
		validator:    validator,
	}
}

// Create handles owner registration
// @Summary Register a new owner
// @Tags Owners
// @Accept json
// @Produce json
// @Param request body dto.CreateOwnerRequest true "Create Owner Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /owners [post]
func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	owner, err := h.ownerUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDNIAlreadyRegistered:
			response.BadRequest(w, "DNI already registered")
		default:
			response.InternalServerError(w, "Failed to create owner")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Owner created successfully", owner)
}

// GetAll handles listing all owners
// @Summary List owners
// @Tags Owners
// @Produce json
// @Success 200 {object} response.Response
// @Router /owners [get]
func (h *OwnerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	owners, err := h.ownerUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get owners")
		return
	}

	response.Success(w, http.StatusOK, "Owners retrieved successfully", owners)
}

// Search handles filtered owner lookup
// @Summary Search owners by field values
// @Tags Owners
// @Produce json
// @Param name query string false "Full name"
// @Param dni query string false "National id"
// @Param address query string false "Address"
// @Param phone query string false "Phone"
// @Param email query string false "Email"
// @Success 200 {object} response.Response
// @Router /owners/search [get]
func (h *OwnerHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.OwnerFilter{
		Name:    query.Get("name"),
		DNI:     query.Get("dni"),
		Address: query.Get("address"),
		Phone:   query.Get("phone"),
		Email:   query.Get("email"),
	}

	owners, err := h.ownerUsecase.Search(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to search owners")
		return
	}

	response.Success(w, http.StatusOK, "Owners retrieved successfully", owners)
}

// GetByID handles getting an owner by ID
// @Summary Get owner by ID
// @Tags Owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owners/{id} [get]
func (h *OwnerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid owner ID")
		return
	}

	owner, err := h.ownerUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to get owner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Owner retrieved successfully", owner)
}

// Update handles owner update
// @Summary Update an owner
// @Tags Owners
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param request body dto.UpdateOwnerRequest true "Update Owner Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owners/{id} [put]
func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid owner ID")
		return
	}

	var req dto.UpdateOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	owner, err := h.ownerUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		case usecase.ErrDNIAlreadyRegistered:
			response.BadRequest(w, "DNI already registered")
		default:
			response.InternalServerError(w, "Failed to update owner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Owner updated successfully", owner)
}

// Delete handles owner deletion, cascading to the owner's animals,
// appointments and invoices
// @Summary Delete an owner
// @Tags Owners
// @Param id path string true "Owner ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /owners/{id} [delete]
func (h *OwnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid owner ID")
		return
	}

	if err := h.ownerUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to delete owner")
		}
		return
	}

	response.NoContent(w)
}
