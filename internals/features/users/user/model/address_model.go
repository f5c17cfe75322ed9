package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel is owned exclusively by one user. AddressType distinguishes
// the "Home" address the reservation flow maintains from any others.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	AddressType string    `gorm:"size:30;not null;default:'Home'" json:"address_type"`
	Street      string    `gorm:"size:255" json:"street"`
	City        string    `gorm:"size:100" json:"city"`
	State       string    `gorm:"size:100" json:"state"`
	Country     string    `gorm:"size:100" json:"country"`
	PostalCode  string    `gorm:"size:20" json:"postal_code"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AddressModel) TableName() string {
	return "addresses"
}

func (m *AddressModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
