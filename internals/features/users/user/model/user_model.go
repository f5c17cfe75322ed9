package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table. Password is the bcrypt hash and is
// nil for users created implicitly through a reservation (they never log in).
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone    *string   `gorm:"size:30" json:"phone,omitempty"`
	Password *string   `gorm:"size:255" json:"-"`
	RoleNum  int       `gorm:"column:role_num;not null;default:3" json:"role_num"`

	Addresses []AddressModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
