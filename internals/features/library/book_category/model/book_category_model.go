package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookCategoryModel represents the book_categories table. Books keep a weak
// back-reference to their category; the category row itself does not load
// its books.
type BookCategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:book_category_name;size:100;not null" json:"book_category_name"`
	Description *string   `gorm:"column:book_category_description;size:500" json:"book_category_description,omitempty"`
	AccessLevel int       `gorm:"column:book_category_access_level;not null;default:10" json:"book_category_access_level"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BookCategoryModel) TableName() string {
	return "book_categories"
}

func (m *BookCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
