package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getAuthUserWith(t *testing.T, hydrate func(c *fiber.Ctx)) (AuthUser, error) {
	t.Helper()
	app := fiber.New()
	var (
		got    AuthUser
		gotErr error
	)
	app.Get("/t", func(c *fiber.Ctx) error {
		if hydrate != nil {
			hydrate(c)
		}
		got, gotErr = GetAuthUser(c)
		return c.SendString("ok")
	})
	_, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	return got, gotErr
}

func TestGetAuthUser(t *testing.T) {
	id := uuid.New()
	actor, err := getAuthUserWith(t, func(c *fiber.Ctx) {
		c.Locals(LocUserID, id.String())
		c.Locals(LocUserName, "Budi")
		c.Locals(LocEmail, "budi@example.com")
		c.Locals(LocRoleNum, 2)
	})
	require.NoError(t, err)
	assert.Equal(t, id, actor.ID)
	assert.Equal(t, "Budi", actor.Name)
	assert.Equal(t, "budi@example.com", actor.Email)
	assert.Equal(t, 2, actor.RoleNum)
}

func TestGetAuthUser_MissingIdentity(t *testing.T) {
	_, err := getAuthUserWith(t, nil)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}

func TestGetAuthUser_MissingRole(t *testing.T) {
	_, err := getAuthUserWith(t, func(c *fiber.Ctx) {
		c.Locals(LocUserID, uuid.New().String())
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}
