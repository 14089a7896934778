package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnimalStatus represents the life status of an animal
type AnimalStatus string

const (
	AnimalStatusAlive    AnimalStatus = "ALIVE"
	AnimalStatusDeceased AnimalStatus = "DECEASED"
)

// Animal represents a patient of the clinic. The (name, owner_id) pair is
// unique: one owner cannot register two animals under the same name.
type Animal struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_animals_name_owner" json:"name"`
	Species   string       `gorm:"type:varchar(50);not null" json:"species"`
	Breed     string       `gorm:"type:varchar(100);not null" json:"breed"`
	Age       int          `gorm:"not null" json:"age"`
	Status    AnimalStatus `gorm:"type:varchar(20);not null;default:'ALIVE'" json:"status"`
	OwnerID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_animals_name_owner;index" json:"owner_id"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner *Owner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Animal) TableName() string {
	return "animals"
}

// IsDeceased checks if the animal has been marked deceased
func (a *Animal) IsDeceased() bool {
	return a.Status == AnimalStatusDeceased
}

// MarkDeceased flips the life status to deceased
func (a *Animal) MarkDeceased() {
	a.Status = AnimalStatusDeceased
}
