package entity

import (
	"time"

	"github.com/google/uuid"
)

// Owner represents a clinic client holding one or more animals.
type Owner struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	DNI       string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"dni"`
	Address   string    `gorm:"type:varchar(200);not null" json:"address"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Animals      []Animal      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"animals,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
	Invoices     []Invoice     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"invoices,omitempty"`
}

func (Owner) TableName() string {
	return "owners"
}
