package dto

import "strings"

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Password string  `json:"password" validate:"required,min=8"`
}

func (r *RegisterRequest) Normalize() {
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

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}
