package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationStatusModel is the status catalog. StatusCode is the stable enum
// value reservations reference (reservation_status_num); the row id is only
// the storage identity.
type ReservationStatusModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StatusCode  int       `gorm:"column:status_code;uniqueIndex;not null" json:"status_code"`
	Name        string    `gorm:"column:status_name;size:100;not null" json:"status_name"`
	Description *string   `gorm:"column:status_description;size:500" json:"status_description,omitempty"`
	AccessLevel int       `gorm:"column:status_access_level;not null;default:10" json:"status_access_level"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReservationStatusModel) TableName() string {
	return "reservation_statuses"
}

func (m *ReservationStatusModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
