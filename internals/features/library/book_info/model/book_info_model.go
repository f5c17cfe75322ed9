package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	categoryModel "perpusku_backend/internals/features/library/book_category/model"
)

// BookInfoModel represents one book title in the catalog. Stock is the total
// number of owned copies; availability is derived against active reservation
// demand, never stored.
type BookInfoModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string          `gorm:"column:book_title;size:255;not null" json:"book_title"`
	Author         string          `gorm:"size:255;not null" json:"author"`
	ISBN           *string         `gorm:"column:isbn;size:20" json:"isbn,omitempty"`
	Publisher      *string         `gorm:"size:255" json:"publisher,omitempty"`
	PublishDate    *datatypes.Date `gorm:"column:publish_date" json:"publish_date,omitempty"`
	Language       *string         `gorm:"size:50" json:"language,omitempty"`
	CoverImage     *string         `gorm:"size:500" json:"cover_image,omitempty"`
	Note           *string         `gorm:"size:1000" json:"note,omitempty"`
	Stock          int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	AccessLevel    int             `gorm:"column:book_info_access_level;not null;default:10" json:"book_info_access_level"`
	BookCategoryID uuid.UUID       `gorm:"type:uuid;not null" json:"book_category_id"`

	BookCategory *categoryModel.BookCategoryModel `gorm:"foreignKey:BookCategoryID" json:"book_category,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BookInfoModel) TableName() string {
	return "book_infos"
}

func (m *BookInfoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
