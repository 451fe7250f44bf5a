package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agency is the tenant root. Every other row in the system hangs off an
// agency and is only ever visible inside it.
type Agency struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Members []User `gorm:"foreignKey:AgencyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new agency
func (a *Agency) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Agency model
func (Agency) TableName() string {
	return "agencies"
}
