package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "users_email_key"`)))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
}

func TestDBErrToFiber(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", gorm.ErrRecordNotFound, fiber.StatusNotFound, "Row not found"},
		{"wrapped not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), fiber.StatusNotFound, "Row not found"},
		{"unique", &pq.Error{Code: "23505"}, fiber.StatusConflict, "Row already exists"},
		{"fk", &pq.Error{Code: "23503"}, fiber.StatusBadRequest, "Referenced row does not exist"},
		{"other", errors.New("boom"), fiber.StatusInternalServerError, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := DBErrToFiber(tt.err, "Row not found", "Row already exists")
			assert.Equal(t, tt.status, fe.Code)
			assert.Equal(t, tt.message, fe.Message)
		})
	}
}
