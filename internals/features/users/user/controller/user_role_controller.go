package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	uDTO "perpusku_backend/internals/features/users/user/dto"
	uModel "perpusku_backend/internals/features/users/user/model"
	helper "perpusku_backend/internals/helpers"
	"perpusku_backend/internals/repository"
)

type UserRoleController struct {
	DB *gorm.DB
}

func NewUserRoleController(db *gorm.DB) *UserRoleController {
	return &UserRoleController{DB: db}
}

var roleListSpec = repository.ListSpec{
	SearchColumns: []string{"role_name", "description"},
	SortColumns: map[string]string{
		"name":       "role_name",
		"serial":     "role_serial",
		"updated_at": "updated_at",
	},
	DefaultOrder: "role_serial ASC",
	AccessColumn: "role_access_level",
}

func (h *UserRoleController) List(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	p := repository.ParseListParams(c, actor)
	rows, total, err := repository.List[uModel.UserRoleModel](h.DB, roleListSpec, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list roles")
	}
	return helper.JsonList(c, "Roles fetched", rows, helper.BuildPagination(total, p.Paging, len(rows)))
}

func (h *UserRoleController) Create(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	var req uDTO.CreateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.DBErrToFiber(err, "Role not found", "Role serial already exists")
	}
	return helper.JsonCreated(c, "Role created", m)
}

func (h *UserRoleController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req uDTO.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m uModel.UserRoleModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		return helper.DBErrToFiber(err, "Role not found", "")
	}
	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.DBErrToFiber(err, "Role not found", "Role serial already exists")
	}
	return helper.JsonUpdated(c, "Role updated", m)
}

func (h *UserRoleController) Delete(c *fiber.Ctx) error {
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

	res := h.DB.Where("id IN ?", req.IDs).Delete(&uModel.UserRoleModel{})
	if res.Error != nil {
		return helper.DBErrToFiber(res.Error, "Role not found", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Role not found")
	}
	return helper.JsonDeleted(c, "Roles deleted", fiber.Map{"deleted": res.RowsAffected})
}
