package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   CREATE
   Payload shape: header + detail lines + user + address,
   submitted together by the reservation form.
   ======================================================= */

type ReservationHeaderPayload struct {
	ReservationRef       string     `json:"reservation_ref" validate:"omitempty,min=3,max=500"`
	ReservationDate      time.Time  `json:"reservation_date" validate:"required"`
	ReservationStatusNum *int       `json:"reservation_status_num,omitempty" validate:"omitempty,min=1"`
	ReservationComment   *string    `json:"reservation_comment,omitempty" validate:"omitempty,min=3,max=1000"`
	AccessLevel          *int       `json:"reservation_access_level,omitempty" validate:"omitempty,min=1"`
	UserID               *uuid.UUID `json:"user_id,omitempty"` // update only
}

type ReservationDetailPayload struct {
	ID         *uuid.UUID `json:"id,omitempty"` // update only
	BookInfoID uuid.UUID  `json:"book_info_id" validate:"required"`
	Quantity   int        `json:"quantity" validate:"required,min=1,max=10000"`
	Note       *string    `json:"note,omitempty" validate:"omitempty,max=500"`
}

type ReservationUserPayload struct {
	ID    *uuid.UUID `json:"id,omitempty"` // update only
	Name  string     `json:"name" validate:"required,min=2,max=100"`
	Email string     `json:"email" validate:"required,email,max=255"`
	Phone *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type ReservationAddressPayload struct {
	ID         *uuid.UUID `json:"id,omitempty"` // update only, upsert semantics
	Street     string     `json:"street" validate:"max=255"`
	City       string     `json:"city" validate:"max=100"`
	State      string     `json:"state" validate:"max=100"`
	Country    string     `json:"country" validate:"max=100"`
	PostalCode string     `json:"postal_code" validate:"max=20"`
}

type CreateBookReservationRequest struct {
	BookReservation    ReservationHeaderPayload   `json:"book_reservation" validate:"required"`
	ReservationDetails []ReservationDetailPayload `json:"reservation_details" validate:"required,min=1,dive"`
	User               ReservationUserPayload     `json:"user" validate:"required"`
	Address            ReservationAddressPayload  `json:"address" validate:"required"`
}

func (r *CreateBookReservationRequest) Normalize() {
	r.BookReservation.ReservationRef = strings.TrimSpace(r.BookReservation.ReservationRef)
	r.User.Name = strings.TrimSpace(r.User.Name)
	r.User.Email = strings.TrimSpace(strings.ToLower(r.User.Email))
	if r.BookReservation.ReservationComment != nil {
		v := strings.TrimSpace(*r.BookReservation.ReservationComment)
		if v == "" {
			r.BookReservation.ReservationComment = nil
		} else {
			r.BookReservation.ReservationComment = &v
		}
	}
}

/* =======================================================
   UPDATE
   Same shape, everything addressed by identity. Details are
   a bulk field-update of rows that already exist; rows
   without an id are ignored (no structural add/remove).
   ======================================================= */

type UpdateBookReservationRequest struct {
	BookReservation    ReservationHeaderPayload   `json:"book_reservation" validate:"required"`
	ReservationDetails []ReservationDetailPayload `json:"reservation_details" validate:"omitempty,dive"`
	User               *ReservationUserPayload    `json:"user,omitempty"`
	Address            *ReservationAddressPayload `json:"address,omitempty"`
}

func (r *UpdateBookReservationRequest) Normalize() {
	r.BookReservation.ReservationRef = strings.TrimSpace(r.BookReservation.ReservationRef)
	if r.User != nil {
		r.User.Name = strings.TrimSpace(r.User.Name)
		r.User.Email = strings.TrimSpace(strings.ToLower(r.User.Email))
	}
	if r.BookReservation.ReservationComment != nil {
		v := strings.TrimSpace(*r.BookReservation.ReservationComment)
		if v == "" {
			r.BookReservation.ReservationComment = nil
		} else {
			r.BookReservation.ReservationComment = &v
		}
	}
}

/* =======================================================
   DELETE — single or batch by reservation id.
   ======================================================= */

type DeleteBookReservationRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}
