package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bcDTO "perpusku_backend/internals/features/library/book_category/dto"
	bcModel "perpusku_backend/internals/features/library/book_category/model"
	helper "perpusku_backend/internals/helpers"
	"perpusku_backend/internals/repository"
)

type BookCategoryController struct {
	DB *gorm.DB
}

func NewBookCategoryController(db *gorm.DB) *BookCategoryController {
	return &BookCategoryController{DB: db}
}

var validate = validator.New()

var listSpec = repository.ListSpec{
	SearchColumns: []string{"book_category_name", "book_category_description"},
	SortColumns: map[string]string{
		"name":       "book_category_name",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	DefaultOrder: "updated_at DESC",
	AccessColumn: "book_category_access_level",
}

/* =========================================================
   LIST
   GET /api/a/book-categories?q=&sort_by=&order=&page=&per_page=
   ========================================================= */
func (h *BookCategoryController) List(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	p := repository.ParseListParams(c, actor)
	rows, total, err := repository.List[bcModel.BookCategoryModel](h.DB, listSpec, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list book categories")
	}
	return helper.JsonList(c, "Book categories fetched", rows, helper.BuildPagination(total, p.Paging, len(rows)))
}

/* =========================================================
   GET BY ID
   ========================================================= */
func (h *BookCategoryController) GetByID(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var row bcModel.BookCategoryModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		return helper.DBErrToFiber(err, "Book category not found", "")
	}
	if !helper.RowVisible(row.AccessLevel, actor.RoleNum) {
		return fiber.NewError(fiber.StatusNotFound, "Book category not found")
	}
	return helper.JsonOK(c, "Book category fetched", row)
}

/* =========================================================
   CREATE
   ========================================================= */
func (h *BookCategoryController) Create(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	var req bcDTO.CreateBookCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.DBErrToFiber(err, "Book category not found", "Book category already exists")
	}
	return helper.JsonCreated(c, "Book category created", m)
}

/* =========================================================
   UPDATE
   ========================================================= */
func (h *BookCategoryController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req bcDTO.UpdateBookCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m bcModel.BookCategoryModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		return helper.DBErrToFiber(err, "Book category not found", "")
	}
	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.DBErrToFiber(err, "Book category not found", "Book category already exists")
	}
	return helper.JsonUpdated(c, "Book category updated", m)
}

/* =========================================================
   DELETE — single or batch (body: {"ids": [...]})
   ========================================================= */
func (h *BookCategoryController) Delete(c *fiber.Ctx) error {
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

	res := h.DB.Where("id IN ?", req.IDs).Delete(&bcModel.BookCategoryModel{})
	if res.Error != nil {
		return helper.DBErrToFiber(res.Error, "Book category not found", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Book category not found")
	}
	return helper.JsonDeleted(c, "Book categories deleted", fiber.Map{"deleted": res.RowsAffected})
}
