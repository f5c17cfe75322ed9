package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/constants"
	bcModel "perpusku_backend/internals/features/library/book_category/model"
	biDTO "perpusku_backend/internals/features/library/book_info/dto"
	biModel "perpusku_backend/internals/features/library/book_info/model"
	helper "perpusku_backend/internals/helpers"
	"perpusku_backend/internals/repository"
)

type BookInfoController struct {
	DB *gorm.DB
}

func NewBookInfoController(db *gorm.DB) *BookInfoController {
	return &BookInfoController{DB: db}
}

var validate = validator.New()

var listSpec = repository.ListSpec{
	SearchColumns: []string{"book_title", "author", "isbn", "publisher"},
	SortColumns: map[string]string{
		"title":      "book_title",
		"author":     "author",
		"stock":      "stock",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	DefaultOrder: "book_title ASC",
	AccessColumn: "book_info_access_level",
	Preloads:     []string{"BookCategory"},
}

/* =========================================================
   LIST
   GET /api/a/book-infos?q=&sort_by=&order=&page=&per_page=
   ========================================================= */
func (h *BookInfoController) List(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	p := repository.ParseListParams(c, actor)
	rows, total, err := repository.List[biModel.BookInfoModel](h.DB, listSpec, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list books")
	}
	return helper.JsonList(c, "Books fetched", rows, helper.BuildPagination(total, p.Paging, len(rows)))
}

/* =========================================================
   GET BY ID
   ========================================================= */
func (h *BookInfoController) GetByID(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var row biModel.BookInfoModel
	if err := h.DB.Preload("BookCategory").First(&row, "id = ?", id).Error; err != nil {
		return helper.DBErrToFiber(err, "Book not found", "")
	}
	if !helper.RowVisible(row.AccessLevel, actor.RoleNum) {
		return fiber.NewError(fiber.StatusNotFound, "Book not found")
	}
	return helper.JsonOK(c, "Book fetched", row)
}

/* =========================================================
   CREATE
   Books submitted without a category land in the sentinel
   "Undefined" category, created on demand.
   ========================================================= */
func (h *BookInfoController) Create(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	var req biDTO.CreateBookInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var created *biModel.BookInfoModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		m := req.ToModel()
		if m.BookCategoryID == uuid.Nil {
			catID, err := ResolveUndefinedCategoryID(tx)
			if err != nil {
				return err
			}
			m.BookCategoryID = catID
		}
		if err := tx.Create(m).Error; err != nil {
			return helper.DBErrToFiber(err, "Book not found", "Book already exists")
		}
		created = m
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Book created", created)
}

/* =========================================================
   UPDATE
   ========================================================= */
func (h *BookInfoController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req biDTO.UpdateBookInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m biModel.BookInfoModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return helper.DBErrToFiber(err, "Book not found", "")
		}
		req.ApplyToModel(&m)
		if m.BookCategoryID == uuid.Nil {
			catID, err := ResolveUndefinedCategoryID(tx)
			if err != nil {
				return err
			}
			m.BookCategoryID = catID
		}
		if err := tx.Save(&m).Error; err != nil {
			return helper.DBErrToFiber(err, "Book not found", "Book already exists")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Book updated", m)
}

/* =========================================================
   DELETE — single or batch (body: {"ids": [...]})
   ========================================================= */
func (h *BookInfoController) Delete(c *fiber.Ctx) error {
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

	res := h.DB.Where("id IN ?", req.IDs).Delete(&biModel.BookInfoModel{})
	if res.Error != nil {
		return helper.DBErrToFiber(res.Error, "Book not found", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Book not found")
	}
	return helper.JsonDeleted(c, "Books deleted", fiber.Map{"deleted": res.RowsAffected})
}

/* =========================================================
   COVER UPLOAD
   POST /api/a/book-infos/:id/cover  (multipart field "cover")
   Converts to WebP, replaces the previous file.
   ========================================================= */
func (h *BookInfoController) UploadCover(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cover file is required")
	}

	var m biModel.BookInfoModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		return helper.DBErrToFiber(err, "Book not found", "")
	}

	filename, err := helper.SaveCoverImage(configs.CoverImageDir, fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	old := m.CoverImage
	m.CoverImage = &filename
	if err := h.DB.Save(&m).Error; err != nil {
		_ = helper.DeleteCoverImage(configs.CoverImageDir, filename)
		return helper.DBErrToFiber(err, "Book not found", "")
	}
	if old != nil {
		_ = helper.DeleteCoverImage(configs.CoverImageDir, *old)
	}
	return helper.JsonUpdated(c, "Cover uploaded", m)
}

// ResolveUndefinedCategoryID returns the sentinel category id, creating the
// row the first time a book needs it.
func ResolveUndefinedCategoryID(tx *gorm.DB) (uuid.UUID, error) {
	var cat bcModel.BookCategoryModel
	err := tx.Where("book_category_name = ?", constants.UndefinedCategoryName).First(&cat).Error
	switch {
	case err == nil:
		return cat.ID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		desc := constants.UndefinedCategoryName
		cat = bcModel.BookCategoryModel{
			Name:        constants.UndefinedCategoryName,
			Description: &desc,
			AccessLevel: constants.AccessLevelPublic,
		}
		if err := tx.Create(&cat).Error; err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create default category")
		}
		return cat.ID, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
