package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a scheduled visit. The consultation room is the
// scarce resource: the composite unique index on (date, time, room) makes
// booking an atomic insert-or-fail instead of a check-then-act sequence.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	// Date and Time stay plain strings end to end. A DATE column would
	// come back from the driver as time.Time and mangle the 2006-01-02
	// wire format, so the date is stored as text.
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_appointments_slot" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_appointments_slot" json:"time"`
	Treatment string    `gorm:"type:varchar(200);not null" json:"treatment"`
	Reason    string    `gorm:"type:varchar(500)" json:"reason"`
	Room      string    `gorm:"column:consultation_room;type:varchar(50);not null;uniqueIndex:idx_appointments_slot" json:"consultation_room"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	AnimalID  uuid.UUID `gorm:"type:uuid;not null;index" json:"animal_id"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner  *Owner  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCompleted checks if the appointment has already been closed out
func (a *Appointment) IsCompleted() bool {
	return a.Completed
}
