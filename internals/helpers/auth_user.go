// file: internals/helpers/auth_user.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocEmail    = "user_email"
	LocRoleNum  = "role_num"
)

// AuthUser is the resolved caller identity. Every service operation takes it
// as an explicit argument; feature code never reads session state on its own.
type AuthUser struct {
	ID      uuid.UUID
	Name    string
	Email   string
	RoleNum int
}

// GetAuthUser reads the caller identity the JWT middleware stored in Locals.
func GetAuthUser(c *fiber.Ctx) (AuthUser, error) {
	idStr, _ := c.Locals(LocUserID).(string)
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return AuthUser{}, fiber.NewError(fiber.StatusUnauthorized, "Login required")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return AuthUser{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}

	roleNum, ok := c.Locals(LocRoleNum).(int)
	if !ok {
		return AuthUser{}, fiber.NewError(fiber.StatusUnauthorized, "Missing role in token")
	}

	name, _ := c.Locals(LocUserName).(string)
	email, _ := c.Locals(LocEmail).(string)

	return AuthUser{
		ID:      id,
		Name:    name,
		Email:   email,
		RoleNum: roleNum,
	}, nil
}
