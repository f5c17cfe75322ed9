package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequestNormalize(t *testing.T) {
	blank := "   "
	req := CreateBookReservationRequest{
		BookReservation: ReservationHeaderPayload{
			ReservationRef:     "  REF-001  ",
			ReservationDate:    time.Now(),
			ReservationComment: &blank,
		},
		User: ReservationUserPayload{
			Name:  "  Budi Santoso ",
			Email: " Budi@Example.COM ",
		},
	}
	req.Normalize()

	assert.Equal(t, "REF-001", req.BookReservation.ReservationRef)
	assert.Equal(t, "Budi Santoso", req.User.Name)
	assert.Equal(t, "budi@example.com", req.User.Email)
	assert.Nil(t, req.BookReservation.ReservationComment, "blank comment collapses to nil")
}

func TestUpdateRequestNormalize_NilUser(t *testing.T) {
	comment := " keep me "
	req := UpdateBookReservationRequest{
		BookReservation: ReservationHeaderPayload{
			ReservationRef:     "REF-002",
			ReservationDate:    time.Now(),
			ReservationComment: &comment,
		},
	}
	req.Normalize()

	assert.Equal(t, "keep me", *req.BookReservation.ReservationComment)
}
