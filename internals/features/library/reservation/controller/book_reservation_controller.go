package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	resvDTO "perpusku_backend/internals/features/library/reservation/dto"
	resvModel "perpusku_backend/internals/features/library/reservation/model"
	resvService "perpusku_backend/internals/features/library/reservation/service"
	helper "perpusku_backend/internals/helpers"
	"perpusku_backend/internals/repository"
)

type BookReservationController struct {
	DB      *gorm.DB
	Service *resvService.ReservationService
}

func NewBookReservationController(db *gorm.DB) *BookReservationController {
	return &BookReservationController{
		DB:      db,
		Service: resvService.NewReservationService(db),
	}
}

var validate = validator.New()

var listSpec = repository.ListSpec{
	SearchColumns: []string{"reservation_ref", "reservation_comment"},
	SortColumns: map[string]string{
		"date":       "reservation_date",
		"ref":        "reservation_ref",
		"status":     "reservation_status_num",
		"updated_at": "updated_at",
	},
	DefaultOrder: "reservation_date DESC",
	AccessColumn: "reservation_access_level",
	Preloads: []string{
		"User", "User.Addresses",
		"Details", "Details.BookInfo", "Details.BookInfo.BookCategory",
	},
}

/* =========================================================
   LIST
   GET /api/a/book-reservations?q=&sort_by=&order=&page=&per_page=
   ========================================================= */
func (h *BookReservationController) List(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	p := repository.ParseListParams(c, actor)
	rows, total, err := repository.List[resvModel.BookReservationModel](h.DB, listSpec, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list reservations")
	}
	return helper.JsonList(c, "Reservations fetched", rows, helper.BuildPagination(total, p.Paging, len(rows)))
}

/* =========================================================
   CREATE
   POST /api/a/book-reservations
   ========================================================= */
func (h *BookReservationController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	var req resvDTO.CreateBookReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	created, err := h.Service.Create(actor, &req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Reservation created", created)
}

/* =========================================================
   UPDATE
   PUT /api/a/book-reservations/:id
   ========================================================= */
func (h *BookReservationController) Update(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req resvDTO.UpdateBookReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updated, err := h.Service.Update(actor, id, &req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Reservation updated", updated)
}

/* =========================================================
   DELETE — single or batch (body: {"ids": [...]})
   ========================================================= */
func (h *BookReservationController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	var req resvDTO.DeleteBookReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := h.Service.Delete(actor, req.IDs)
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Reservations deleted", result)
}

/* =========================================================
   STOCK POSITION
   GET /api/a/stock-position
   ========================================================= */
func (h *BookReservationController) StockPosition(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	pos, err := h.Service.StockPosition(actor)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Stock position computed", pos)
}
