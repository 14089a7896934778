package usecase

import (
	"context"
	"errors"

	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrInsufficientStock    = errors.New("insufficient stock")
)

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetAll(ctx context.Context) (*dto.ProductListResponse, error)
	GetByName(ctx context.Context, name string) (*dto.ProductResponse, error)
	Search(ctx context.Context, name, category string) (*dto.ProductListResponse, error)
	Update(ctx context.Context, name string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	UpdatePrice(ctx context.Context, name string, price decimal.Decimal) (*dto.ProductResponse, error)
	AdjustStock(ctx context.Context, name string, delta int) (*dto.ProductResponse, error)
	Delete(ctx context.Context, name string) error
	Sell(ctx context.Context, name string, quantity int) (*dto.ProductSaleResponse, error)
	Sales(ctx context.Context) (*dto.ProductSaleListResponse, error)
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
	saleRepo    repository.ProductSaleRepository
	audit       service.AuditService
}

func NewProductUsecase(
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	saleRepo repository.ProductSaleRepository,
	audit service.AuditService,
) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		audit:       audit,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Category:    req.Category,
		Brand:       req.Brand,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrProductAlreadyExists
		}
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetAll(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := u.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ProductListResponse{
		Products: converter.ProductsToResponses(products),
		Total:    len(products),
	}, nil
}

func (u *productUsecase) GetByName(ctx context.Context, name string) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Search(ctx context.Context, name, category string) (*dto.ProductListResponse, error) {
	products, err := u.productRepo.Search(ctx, name, category)
	if err != nil {
		return nil, err
	}

	return &dto.ProductListResponse{
		Products: converter.ProductsToResponses(products),
		Total:    len(products),
	}, nil
}

func (u *productUsecase) Update(ctx context.Context, name string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Category = req.Category
	product.Brand = req.Brand
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) UpdatePrice(ctx context.Context, name string, price decimal.Decimal) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Price = price
	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

// AdjustStock applies a restock delta; the count may never drop below
// zero.
func (u *productUsecase) AdjustStock(ctx context.Context, name string, delta int) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if product.Stock+delta < 0 {
		return nil, ErrInsufficientStock
	}

	product.Stock += delta
	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Delete(ctx context.Context, name string) error {
	affected, err := u.productRepo.DeleteByName(ctx, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Sell decrements stock and appends a ledger entry.
//
// Flow:
//  1. Find product
//  2. Conditional decrement (rows affected 0 = not enough stock, stock is
//     left untouched)
//  3. Append the timestamped sale record
func (u *productUsecase) Sell(ctx context.Context, name string, quantity int) (*dto.ProductSaleResponse, error) {
	product, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to find product %s: %+v", name, err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	affected, err := u.productRepo.DecrementStock(ctx, name, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInsufficientStock
	}

	sale := &entity.ProductSale{
		ProductName: product.Name,
		Quantity:    quantity,
		TotalPrice:  product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}

	if err := u.saleRepo.Create(ctx, sale); err != nil {
		u.log.Errorf("Failed to record sale of %s: %+v", name, err)
		return nil, err
	}

	u.log.Infof("Product sold: name=%s, quantity=%d, total=%s", name, quantity, sale.TotalPrice)
	u.audit.Record(ctx, "product.sold", entity.JSON{
		"product_name": name,
		"quantity":     quantity,
		"total_price":  sale.TotalPrice.String(),
	})
	return converter.ProductSaleToResponse(sale), nil
}

func (u *productUsecase) Sales(ctx context.Context) (*dto.ProductSaleListResponse, error) {
	sales, err := u.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ProductSaleListResponse{
		Sales: converter.ProductSalesToResponses(sales),
		Total: len(sales),
	}, nil
}
