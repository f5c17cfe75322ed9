package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "perpusku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // read cookie access_token when no Bearer header
}

// AuthJWT verifies the access token and hydrates the caller identity into
// Locals (user_id, user_name, user_email, role_num) for helper.GetAuthUser.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token from Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// 3) Hydrate the Locals helper.GetAuthUser expects
		id := strClaim(claims, "id")
		if id == "" {
			id = strClaim(claims, "sub")
		}
		if _, err := uuid.Parse(id); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
		}
		c.Locals(helper.LocUserID, id)

		if v := strClaim(claims, "name"); v != "" {
			c.Locals(helper.LocUserName, v)
		}
		if v := strClaim(claims, "email"); v != "" {
			c.Locals(helper.LocEmail, v)
		}

		roleNum, ok := intClaim(claims, "role_num")
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing role in token")
		}
		c.Locals(helper.LocRoleNum, roleNum)

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func intClaim(claims jwt.MapClaims, key string) (int, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		n := 0
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0, false
			}
			n = n*10 + int(r-'0')
		}
		if s == "" {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
