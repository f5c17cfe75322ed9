package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "perpusku_backend/internals/helpers"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newGuardedApp(t *testing.T) (*fiber.App, *helper.AuthUser) {
	t.Helper()
	var seen helper.AuthUser
	app := fiber.New()
	app.Get("/p", AuthJWT(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}), func(c *fiber.Ctx) error {
		actor, err := helper.GetAuthUser(c)
		if err != nil {
			return err
		}
		seen = actor
		return c.SendString("ok")
	})
	return app, &seen
}

func validClaims(id uuid.UUID) jwt.MapClaims {
	return jwt.MapClaims{
		"id":       id.String(),
		"name":     "Budi",
		"email":    "budi@example.com",
		"role_num": 2,
		"exp":      time.Now().Add(time.Minute).Unix(),
	}
}

func TestAuthJWT_BearerHydratesLocals(t *testing.T) {
	app, seen := newGuardedApp(t)
	id := uuid.New()

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, validClaims(id)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, id, seen.ID)
	assert.Equal(t, "Budi", seen.Name)
	assert.Equal(t, "budi@example.com", seen.Email)
	assert.Equal(t, 2, seen.RoleNum)
}

func TestAuthJWT_CookieFallback(t *testing.T) {
	app, seen := newGuardedApp(t)
	id := uuid.New()

	req := httptest.NewRequest("GET", "/p", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, testSecret, validClaims(id))})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, id, seen.ID)
}

func TestAuthJWT_MissingToken(t *testing.T) {
	app, _ := newGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/p", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	app, _ := newGuardedApp(t)

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "other-secret", validClaims(uuid.New())))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	app, _ := newGuardedApp(t)

	claims := validClaims(uuid.New())
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, claims))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWT_MissingRoleClaim(t *testing.T) {
	app, _ := newGuardedApp(t)

	claims := validClaims(uuid.New())
	delete(claims, "role_num")
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, claims))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
