package dto

import (
	"strings"

	rsModel "perpusku_backend/internals/features/library/reservation_status/model"
)

type CreateReservationStatusRequest struct {
	StatusCode  int     `json:"status_code" validate:"required,min=1"`
	Name        string  `json:"status_name" validate:"required,min=2,max=100"`
	Description *string `json:"status_description,omitempty" validate:"omitempty,max=500"`
	AccessLevel *int    `json:"status_access_level,omitempty" validate:"omitempty,min=1"`
}

func (r *CreateReservationStatusRequest) Normalize() {
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

func (r *CreateReservationStatusRequest) ToModel() *rsModel.ReservationStatusModel {
	m := &rsModel.ReservationStatusModel{
		StatusCode:  r.StatusCode,
		Name:        r.Name,
		Description: r.Description,
		AccessLevel: 10,
	}
	if r.AccessLevel != nil {
		m.AccessLevel = *r.AccessLevel
	}
	return m
}

type UpdateReservationStatusRequest struct {
	StatusCode  *int    `json:"status_code,omitempty" validate:"omitempty,min=1"`
	Name        *string `json:"status_name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"status_description,omitempty" validate:"omitempty,max=500"`
	AccessLevel *int    `json:"status_access_level,omitempty" validate:"omitempty,min=1"`
}

func (r *UpdateReservationStatusRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

func (r *UpdateReservationStatusRequest) ApplyToModel(m *rsModel.ReservationStatusModel) {
	if r.StatusCode != nil {
		m.StatusCode = *r.StatusCode
	}
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
