package dto

import (
	"strings"

	uModel "perpusku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type AddressPayload struct {
	Street     string `json:"street" validate:"max=255"`
	City       string `json:"city" validate:"max=100"`
	State      string `json:"state" validate:"max=100"`
	Country    string `json:"country" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"max=20"`
}

// CreateUserRequest — admin-side create; password is hashed in the controller.
type CreateUserRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Phone    *string         `json:"phone,omitempty" validate:"omitempty,max=30"`
	Password *string         `json:"password,omitempty" validate:"omitempty,min=8"`
	RoleNum  *int            `json:"role_num,omitempty" validate:"omitempty,min=1"`
	Address  *AddressPayload `json:"address,omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		if v == "" {
			r.Phone = nil
		} else {
			r.Phone = &v
		}
	}
}

func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	m := &uModel.UserModel{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		RoleNum: 3,
	}
	if r.RoleNum != nil {
		m.RoleNum = *r.RoleNum
	}
	if r.Address != nil {
		m.Addresses = []uModel.AddressModel{{
			AddressType: "Home",
			Street:      r.Address.Street,
			City:        r.Address.City,
			State:       r.Address.State,
			Country:     r.Address.Country,
			PostalCode:  r.Address.PostalCode,
		}}
	}
	return m
}

// UpdateUserRequest — partial update via pointers.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	RoleNum  *int    `json:"role_num,omitempty" validate:"omitempty,min=1"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
}

// ApplyToModel applies everything except the password, which the controller
// hashes first.
func (r *UpdateUserRequest) ApplyToModel(m *uModel.UserModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.RoleNum != nil {
		m.RoleNum = *r.RoleNum
	}
}
