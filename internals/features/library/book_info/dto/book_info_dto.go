package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	biModel "perpusku_backend/internals/features/library/book_info/model"
)

// DateOnly accepts the plain "2006-01-02" form a publish date is usually
// submitted in, with full RFC3339 still allowed.
type DateOnly datatypes.Date

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("publish_date must be YYYY-MM-DD: %q", s)
		}
	}
	*d = DateOnly(t)
	return nil
}

func (d *DateOnly) toDate() *datatypes.Date {
	if d == nil {
		return nil
	}
	return (*datatypes.Date)(d)
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateBookInfoRequest struct {
	Title          string          `json:"book_title" validate:"required,min=1,max=255"`
	Author         string          `json:"author" validate:"required,min=1,max=255"`
	ISBN           *string         `json:"isbn,omitempty" validate:"omitempty,max=20"`
	Publisher      *string         `json:"publisher,omitempty" validate:"omitempty,max=255"`
	PublishDate    *DateOnly       `json:"publish_date,omitempty"`
	Language       *string         `json:"language,omitempty" validate:"omitempty,max=50"`
	Note           *string         `json:"note,omitempty" validate:"omitempty,max=1000"`
	Stock          int             `json:"stock" validate:"min=0"`
	AccessLevel    *int            `json:"book_info_access_level,omitempty" validate:"omitempty,min=1"`
	BookCategoryID *uuid.UUID      `json:"book_category_id,omitempty"`
}

func (r *CreateBookInfoRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	trimOpt(&r.ISBN)
	trimOpt(&r.Publisher)
	trimOpt(&r.Language)
	trimOpt(&r.Note)
}

func (r *CreateBookInfoRequest) ToModel() *biModel.BookInfoModel {
	m := &biModel.BookInfoModel{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Publisher:   r.Publisher,
		PublishDate: r.PublishDate.toDate(),
		Language:    r.Language,
		Note:        r.Note,
		Stock:       r.Stock,
		AccessLevel: 10,
	}
	if r.AccessLevel != nil {
		m.AccessLevel = *r.AccessLevel
	}
	if r.BookCategoryID != nil {
		m.BookCategoryID = *r.BookCategoryID
	}
	return m
}

type UpdateBookInfoRequest struct {
	Title          *string         `json:"book_title,omitempty" validate:"omitempty,min=1,max=255"`
	Author         *string         `json:"author,omitempty" validate:"omitempty,min=1,max=255"`
	ISBN           *string         `json:"isbn,omitempty" validate:"omitempty,max=20"`
	Publisher      *string         `json:"publisher,omitempty" validate:"omitempty,max=255"`
	PublishDate    *DateOnly       `json:"publish_date,omitempty"`
	Language       *string         `json:"language,omitempty" validate:"omitempty,max=50"`
	Note           *string         `json:"note,omitempty" validate:"omitempty,max=1000"`
	Stock          *int            `json:"stock,omitempty" validate:"omitempty,min=0"`
	AccessLevel    *int            `json:"book_info_access_level,omitempty" validate:"omitempty,min=1"`
	BookCategoryID *uuid.UUID      `json:"book_category_id,omitempty"`
}

func (r *UpdateBookInfoRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Author != nil {
		v := strings.TrimSpace(*r.Author)
		r.Author = &v
	}
	trimOpt(&r.ISBN)
	trimOpt(&r.Publisher)
	trimOpt(&r.Language)
	trimOpt(&r.Note)
}

func (r *UpdateBookInfoRequest) ApplyToModel(m *biModel.BookInfoModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Author != nil {
		m.Author = *r.Author
	}
	if r.ISBN != nil {
		m.ISBN = r.ISBN
	}
	if r.Publisher != nil {
		m.Publisher = r.Publisher
	}
	if r.PublishDate != nil {
		m.PublishDate = r.PublishDate.toDate()
	}
	if r.Language != nil {
		m.Language = r.Language
	}
	if r.Note != nil {
		m.Note = r.Note
	}
	if r.Stock != nil {
		m.Stock = *r.Stock
	}
	if r.AccessLevel != nil {
		m.AccessLevel = *r.AccessLevel
	}
	if r.BookCategoryID != nil {
		m.BookCategoryID = *r.BookCategoryID
	}
}

func trimOpt(s **string) {
	if *s == nil {
		return
	}
	v := strings.TrimSpace(**s)
	if v == "" {
		*s = nil
	} else {
		*s = &v
	}
}
