package entity

import (
	"time"

	"github.com/agustiinveraa/inmoflow/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a person the agency works with (buyer, seller, lead)
type Client struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	AgencyID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"agency_id"`
	FullName  string            `gorm:"size:255;not null" json:"full_name"`
	Email     *string           `gorm:"size:255" json:"email,omitempty"`
	Phone     *string           `gorm:"size:50" json:"phone,omitempty"`
	Notes     *string           `gorm:"type:text" json:"notes,omitempty"`
	Status    enum.ClientStatus `gorm:"size:50;not null;default:'active'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Agency Agency `gorm:"foreignKey:AgencyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
