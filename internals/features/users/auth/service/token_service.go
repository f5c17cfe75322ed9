package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	userModel "perpusku_backend/internals/features/users/user/model"
	helper "perpusku_backend/internals/helpers"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// IssueTokens signs an access/refresh pair for the user. The access token
// carries the caller identity the JWT middleware hydrates into Locals.
func IssueTokens(u *userModel.UserModel) (access string, refresh string, err error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"id":       u.ID.String(),
		"name":     u.Name,
		"email":    u.Email,
		"role_num": u.RoleNum,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTokenTTL).Unix(),
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign access token")
	}

	refreshClaims := jwt.MapClaims{
		"id":  u.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTokenTTL).Unix(),
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign refresh token")
	}
	return access, refresh, nil
}

// ========================== REFRESH ==========================
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	raw := strings.TrimSpace(req.RefreshToken)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token is required")
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var u userModel.UserModel
	if err := db.First(&u, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	access, refresh, err := IssueTokens(&u)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}
