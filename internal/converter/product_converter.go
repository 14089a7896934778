package converter

import (
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
)

func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          product.ID,
		Category:    product.Category,
		Brand:       product.Brand,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ProductToResponse(&products[i]))
	}
	return responses
}

func ProductSaleToResponse(sale *entity.ProductSale) *dto.ProductSaleResponse {
	return &dto.ProductSaleResponse{
		ID:          sale.ID,
		ProductName: sale.ProductName,
		Quantity:    sale.Quantity,
		TotalPrice:  sale.TotalPrice,
		SoldAt:      sale.SoldAt,
	}
}

func ProductSalesToResponses(sales []entity.ProductSale) []dto.ProductSaleResponse {
	responses := make([]dto.ProductSaleResponse, 0, len(sales))
	for i := range sales {
		responses = append(responses, *ProductSaleToResponse(&sales[i]))
	}
	return responses
}
