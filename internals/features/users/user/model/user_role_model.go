package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRoleModel is the role catalog. RoleSerial is the stable value users
// reference through role_num, same pattern as reservation status codes.
type UserRoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoleName    string    `gorm:"size:50;not null" json:"role_name"`
	RoleSerial  int       `gorm:"column:role_serial;uniqueIndex;not null" json:"role_serial"`
	Description *string   `gorm:"size:500" json:"description,omitempty"`
	AccessLevel int       `gorm:"column:role_access_level;not null;default:10" json:"role_access_level"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

func (m *UserRoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
