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

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

// Create handles product catalog entry creation
// @Summary Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /productos [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProductAlreadyExists:
			response.BadRequest(w, "Product already exists")
		default:
			response.InternalServerError(w, "Failed to create product")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

// GetAll handles listing the product catalog
// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {object} response.Response
// @Router /productos [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// Search handles name/category product lookup
// @Summary Search products
// @Tags Products
// @Produce json
// @Param nombre query string false "Name substring"
// @Param categoria query string false "Category substring"
// @Success 200 {object} response.Response
// @Router /productos/busqueda [get]
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	products, err := h.productUsecase.Search(r.Context(), query.Get("nombre"), query.Get("categoria"))
	if err != nil {
		response.InternalServerError(w, "Failed to search products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// GetByName handles getting a product by its unique name
// @Summary Get product by name
// @Tags Products
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /productos/{name} [get]
func (h *ProductHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	product, err := h.productUsecase.GetByName(r.Context(), name)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		default:
			response.InternalServerError(w, "Failed to get product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// Update handles full product update by name
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param name path string true "Product name"
// @Param request body dto.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /productos/{name} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Update(r.Context(), name, &req)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		default:
			response.InternalServerError(w, "Failed to update product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

// UpdatePrice handles price-only update by name
// @Summary Update product price
// @Tags Products
// @Accept json
// @Produce json
// @Param name path string true "Product name"
// @Param request body dto.UpdateProductPriceRequest true "Update Price Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /productos/{name}/precio [put]
func (h *ProductHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req dto.UpdateProductPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.UpdatePrice(r.Context(), name, req.Price)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		default:
			response.InternalServerError(w, "Failed to update product price")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product price updated successfully", product)
}

// AdjustStock handles restocking; the body carries a delta
// @Summary Adjust product stock
// @Tags Products
// @Accept json
// @Produce json
// @Param name path string true "Product name"
// @Param request body dto.AdjustProductStockRequest true "Adjust Stock Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /productos/{name}/stock [put]
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req dto.AdjustProductStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.AdjustStock(r.Context(), name, req.Stock)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		case usecase.ErrInsufficientStock:
			response.BadRequest(w, "Stock cannot drop below zero")
		default:
			response.InternalServerError(w, "Failed to adjust product stock")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product stock updated successfully", product)
}

// Sell handles a product sale
// @Summary Sell a product
// @Tags Products
// @Accept json
// @Produce json
// @Param name path string true "Product name"
// @Param request body dto.SellProductRequest true "Sell Product Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /productos/{name}/venta [post]
func (h *ProductHandler) Sell(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req dto.SellProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sale, err := h.productUsecase.Sell(r.Context(), name, req.Quantity)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		case usecase.ErrInsufficientStock:
			response.BadRequest(w, "Insufficient stock")
		default:
			response.InternalServerError(w, "Failed to sell product")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Product sold successfully", sale)
}

// Sales handles listing the sale ledger
// @Summary List product sales
// @Tags Products
// @Produce json
// @Success 200 {object} response.Response
// @Router /productos/ventas [get]
func (h *ProductHandler) Sales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.productUsecase.Sales(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get product sales")
		return
	}

	response.Success(w, http.StatusOK, "Product sales retrieved successfully", sales)
}

// Delete handles product deletion by name
// @Summary Delete a product
// @Tags Products
// @Param name path string true "Product name"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /productos/{name} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.productUsecase.Delete(r.Context(), name); err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		default:
			response.InternalServerError(w, "Failed to delete product")
		}
		return
	}

	response.NoContent(w)
}
