package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visit schedules a client at a property. VisitDate is the wall-clock
// string "YYYY-MM-DDTHH:MM:SS" exactly as entered; it is never converted
// between timezones, and its lexicographic order is chronological, so
// calendar queries compare it as a plain string.
type Visit struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	AgencyID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"agency_id"`
	PropertyID uuid.UUID      `gorm:"type:uuid;not null;index" json:"property_id"`
	ClientID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
	VisitDate  string         `gorm:"size:19;not null;index" json:"visit_date"`
	Notes      *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Agency   Agency    `gorm:"foreignKey:AgencyID" json:"-"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Client   *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new visit
func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Visit model
func (Visit) TableName() string {
	return "visits"
}
