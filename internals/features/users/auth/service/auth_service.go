package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/constants"
	authDTO "perpusku_backend/internals/features/users/auth/dto"
	userModel "perpusku_backend/internals/features/users/user/model"
	helper "perpusku_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	pw := string(hashed)

	u := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: &pw,
		RoleNum:  constants.RoleSerialMember,
	}
	if err := db.Create(&u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registered successfully", fiber.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	})
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var u userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	if u.Password == nil {
		// user created through a reservation, never set a password
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return respondWithTokens(c, &u)
}

// ========================== GOOGLE LOGIN ==========================
// Verifies the Google ID token and finds or creates the matching user.
func GoogleLogin(db *gorm.DB, c *fiber.Ctx) error {
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.TrimSpace(strings.ToLower(claimSet.Email))
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token has no email")
	}

	var u userModel.UserModel
	err = db.Where("email = ?", email).First(&u).Error
	switch {
	case err == nil:
		// existing account, nothing to sync besides the name when empty
		syncGoogleName(db, &u, claimSet.Name)
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = userModel.UserModel{
			Name:    claimSet.Name,
			Email:   email,
			RoleNum: constants.RoleSerialMember,
		}
		if err := db.Create(&u).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}

	return respondWithTokens(c, &u)
}

// syncGoogleName fills an empty user name from the Google profile. Login
// proceeds either way, a failed sync is only logged.
func syncGoogleName(db *gorm.DB, u *userModel.UserModel, name string) {
	if u.Name != "" || name == "" {
		return
	}
	u.Name = name
	if err := db.Save(u).Error; err != nil {
		log.Printf("google name sync for %s err: %v", u.Email, err)
	}
}

func respondWithTokens(c *fiber.Ctx, u *userModel.UserModel) error {
	access, refresh, err := IssueTokens(u)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user": fiber.Map{
			"id":       u.ID,
			"name":     u.Name,
			"email":    u.Email,
			"role_num": u.RoleNum,
		},
	})
}
