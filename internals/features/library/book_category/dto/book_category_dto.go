package dto

import (
	"strings"

	bcModel "perpusku_backend/internals/features/library/book_category/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateBookCategoryRequest struct {
	Name        string  `json:"book_category_name" validate:"required,min=2,max=100"`
	Description *string `json:"book_category_description,omitempty" validate:"omitempty,max=500"`
	AccessLevel *int    `json:"book_category_access_level,omitempty" validate:"omitempty,min=1"`
}

func (r *CreateBookCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

func (r *CreateBookCategoryRequest) ToModel() *bcModel.BookCategoryModel {
	m := &bcModel.BookCategoryModel{
		Name:        r.Name,
		Description: r.Description,
		AccessLevel: 10,
	}
	if r.AccessLevel != nil {
		m.AccessLevel = *r.AccessLevel
	}
	return m
}

type UpdateBookCategoryRequest struct {
	Name        *string `json:"book_category_name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"book_category_description,omitempty" validate:"omitempty,max=500"`
	AccessLevel *int    `json:"book_category_access_level,omitempty" validate:"omitempty,min=1"`
}

func (r *UpdateBookCategoryRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

func (r *UpdateBookCategoryRequest) ApplyToModel(m *bcModel.BookCategoryModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.AccessLevel != nil {
		m.AccessLevel = *r.AccessLevel
	}
}
