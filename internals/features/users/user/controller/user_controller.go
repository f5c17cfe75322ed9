package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	uDTO "perpusku_backend/internals/features/users/user/dto"
	uModel "perpusku_backend/internals/features/users/user/model"
	helper "perpusku_backend/internals/helpers"
	"perpusku_backend/internals/repository"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

var userListSpec = repository.ListSpec{
	SearchColumns: []string{"name", "email", "phone"},
	SortColumns: map[string]string{
		"name":       "name",
		"email":      "email",
		"updated_at": "updated_at",
	},
	DefaultOrder: "updated_at DESC",
	Preloads:     []string{"Addresses"},
}

/* =========================================================
   LIST
   GET /api/a/users?q=&sort_by=&order=&page=&per_page=
   ========================================================= */
func (h *UserController) List(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	p := repository.ParseListParams(c, actor)
	rows, total, err := repository.List[uModel.UserModel](h.DB, userListSpec, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list users")
	}
	return helper.JsonList(c, "Users fetched", rows, helper.BuildPagination(total, p.Paging, len(rows)))
}

/* =========================================================
   GET ME — profile of the authenticated caller
   ========================================================= */
func (h *UserController) GetMe(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	var u uModel.UserModel
	if err := h.DB.Preload("Addresses").First(&u, "id = ?", actor.ID).Error; err != nil {
		return helper.DBErrToFiber(err, "User not found", "")
	}
	return helper.JsonOK(c, "Profile fetched", u)
}

/* =========================================================
   CREATE
   ========================================================= */
func (h *UserController) Create(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	var req uDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
		}
		s := string(hashed)
		m.Password = &s
	}

	if err := h.DB.Create(m).Error; err != nil {
		return helper.DBErrToFiber(err, "User not found", "Email already in use")
	}
	return helper.JsonCreated(c, "User created", m)
}

/* =========================================================
   UPDATE
   ========================================================= */
func (h *UserController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req uDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m uModel.UserModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		return helper.DBErrToFiber(err, "User not found", "")
	}
	req.ApplyToModel(&m)
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
		}
		s := string(hashed)
		m.Password = &s
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.DBErrToFiber(err, "User not found", "Email already in use")
	}
	return helper.JsonUpdated(c, "User updated", m)
}

/* =========================================================
   DELETE — single or batch (body: {"ids": [...]})
   ========================================================= */
func (h *UserController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	var req struct {
		IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id IN ?", req.IDs).Delete(&uModel.AddressModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		res := tx.Where("id IN ?", req.IDs).Delete(&uModel.UserModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Users deleted", nil)
}
