package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSale is the ledger entry appended when a product is sold. It is a
// lightweight record, deliberately separate from the appointment invoice
// model.
type ProductSale struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductName string          `gorm:"type:varchar(100);not null;index" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	SoldAt      time.Time       `gorm:"autoCreateTime" json:"sold_at"`
}

func (ProductSale) TableName() string {
	return "product_sales"
}
