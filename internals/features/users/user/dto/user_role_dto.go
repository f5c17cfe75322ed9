package dto

import (
	"strings"

	uModel "perpusku_backend/internals/features/users/user/model"
)

type CreateUserRoleRequest struct {
	RoleName    string  `json:"role_name" validate:"required,min=2,max=50"`
	RoleSerial  int     `json:"role_serial" validate:"required,min=1"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	AccessLevel *int    `json:"role_access_level,omitempty" validate:"omitempty,min=1"`
}

func (r *CreateUserRoleRequest) Normalize() {
	r.RoleName = strings.TrimSpace(r.RoleName)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

func (r *CreateUserRoleRequest) ToModel() *uModel.UserRoleModel {
	m := &uModel.UserRoleModel{
		RoleName:    r.RoleName,
		RoleSerial:  r.RoleSerial,
		Description: r.Description,
		AccessLevel: 10,
	}
	if r.AccessLevel != nil {
		m.AccessLevel = *r.AccessLevel
	}
	return m
}

type UpdateUserRoleRequest struct {
	RoleName    *string `json:"role_name,omitempty" validate:"omitempty,min=2,max=50"`
	RoleSerial  *int    `json:"role_serial,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	AccessLevel *int    `json:"role_access_level,omitempty" validate:"omitempty,min=1"`
}

func (r *UpdateUserRoleRequest) Normalize() {
	if r.RoleName != nil {
		v := strings.TrimSpace(*r.RoleName)
		r.RoleName = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

func (r *UpdateUserRoleRequest) ApplyToModel(m *uModel.UserRoleModel) {
	if r.RoleName != nil {
		m.RoleName = *r.RoleName
	}
	if r.RoleSerial != nil {
		m.RoleSerial = *r.RoleSerial
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.AccessLevel != nil {
		m.AccessLevel = *r.AccessLevel
	}
}
