package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "perpusku_backend/internals/features/library/book_info/model"
	userModel "perpusku_backend/internals/features/users/user/model"
)

// BookReservationModel is the reservation header. ReservationStatusNum
// references reservation_statuses.status_code (the stable enum), not the
// status row id. Detail rows cascade on delete.
type BookReservationModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReservationRef       string    `gorm:"column:reservation_ref;size:500;not null" json:"reservation_ref"`
	ReservationDate      time.Time `gorm:"column:reservation_date;not null" json:"reservation_date"`
	ReservationStatusNum int       `gorm:"column:reservation_status_num;not null;default:1" json:"reservation_status_num"`
	ReservationComment   *string   `gorm:"column:reservation_comment;size:1000" json:"reservation_comment,omitempty"`
	AccessLevel          int       `gorm:"column:reservation_access_level;not null;default:10" json:"reservation_access_level"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	User    *userModel.UserModel     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Details []ReservationDetailModel `gorm:"foreignKey:BookReservationID;constraint:OnDelete:CASCADE" json:"reservation_details,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BookReservationModel) TableName() string {
	return "book_reservations"
}

func (m *BookReservationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ReservationDetailModel is one requested line item on a reservation.
type ReservationDetailModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BookReservationID uuid.UUID `gorm:"type:uuid;not null;index" json:"book_reservation_id"`
	BookInfoID        uuid.UUID `gorm:"type:uuid;not null;index" json:"book_info_id"`
	Quantity          int       `gorm:"not null;check:quantity >= 1" json:"quantity"`
	Note              *string   `gorm:"size:500" json:"note,omitempty"`

	BookInfo *bookModel.BookInfoModel `gorm:"foreignKey:BookInfoID" json:"book_info,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReservationDetailModel) TableName() string {
	return "reservation_details"
}

func (m *ReservationDetailModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
