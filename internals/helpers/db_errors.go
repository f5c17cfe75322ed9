// file: internals/helpers/db_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IsUniqueViolation detects a unique-constraint violation. Postgres reports
// SQLSTATE 23505; the string fallback also covers the sqlite driver used in
// tests.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}

// IsForeignKeyViolation detects a referential-integrity failure (23503).
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key")
}

// DBErrToFiber maps a store error onto the shared error taxonomy:
// missing row → 404, unique violation → 409, FK violation → 400,
// anything else → 500.
func DBErrToFiber(err error, notFoundMsg, conflictMsg string) *fiber.Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case IsUniqueViolation(err):
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	case IsForeignKeyViolation(err):
		return fiber.NewError(fiber.StatusBadRequest, "Referenced row does not exist")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
