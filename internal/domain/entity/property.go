package entity

import (
	"time"

	"github.com/agustiinveraa/inmoflow/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property represents a listed property. Images holds the public URLs of
// its photos in display order; the first one is the primary image.
type Property struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	AgencyID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"agency_id"`
	Title        string              `gorm:"size:255;not null" json:"title"`
	Description  *string             `gorm:"type:text" json:"description,omitempty"`
	Address      *string             `gorm:"size:255" json:"address,omitempty"`
	Price        *float64            `json:"price,omitempty"`
	PropertyType *enum.PropertyType  `gorm:"size:50" json:"property_type,omitempty"`
	Status       enum.PropertyStatus `gorm:"size:50;not null;default:'available'" json:"status"`
	Images       []string            `gorm:"type:jsonb;serializer:json" json:"images"`
	ClientID     *uuid.UUID          `gorm:"type:uuid;index" json:"client_id,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	DeletedAt    gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Agency Agency  `gorm:"foreignKey:AgencyID" json:"-"`
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new property
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Property model
func (Property) TableName() string {
	return "properties"
}
