package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticated account together with its profile.
// AgencyID stays nil until the user creates an agency or is invited into
// one; nothing tenant-scoped is reachable before that.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FullName    string         `gorm:"size:255;not null" json:"full_name"`
	Email       string         `gorm:"size:255;unique;not null" json:"email"`
	Phone       *string        `gorm:"size:50" json:"phone,omitempty"`
	Password    string         `gorm:"size:255" json:"-"`
	Provider    string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID  *string        `gorm:"size:255" json:"-"`
	Photo       *string        `gorm:"size:255" json:"photo,omitempty"`
	AgencyID    *uuid.UUID     `gorm:"type:uuid;index" json:"agency_id,omitempty"`
	AgencyAdmin bool           `gorm:"not null;default:false" json:"agency_admin"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Agency *Agency `gorm:"foreignKey:AgencyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
