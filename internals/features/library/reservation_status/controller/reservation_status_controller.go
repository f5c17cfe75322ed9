package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rsDTO "perpusku_backend/internals/features/library/reservation_status/dto"
	rsModel "perpusku_backend/internals/features/library/reservation_status/model"
	helper "perpusku_backend/internals/helpers"
	"perpusku_backend/internals/repository"
)

type ReservationStatusController struct {
	DB *gorm.DB
}

func NewReservationStatusController(db *gorm.DB) *ReservationStatusController {
	return &ReservationStatusController{DB: db}
}

var validate = validator.New()

var listSpec = repository.ListSpec{
	SearchColumns: []string{"status_name", "status_description"},
	SortColumns: map[string]string{
		"name":        "status_name",
		"status_code": "status_code",
		"updated_at":  "updated_at",
	},
	DefaultOrder: "status_code ASC",
	AccessColumn: "status_access_level",
}

func (h *ReservationStatusController) List(c *fiber.Ctx) error {
	actor, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}

	p := repository.ParseListParams(c, actor)
	rows, total, err := repository.List[rsModel.ReservationStatusModel](h.DB, listSpec, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list reservation statuses")
	}
	return helper.JsonList(c, "Reservation statuses fetched", rows, helper.BuildPagination(total, p.Paging, len(rows)))
}

func (h *ReservationStatusController) Create(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	var req rsDTO.CreateReservationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.DBErrToFiber(err, "Reservation status not found", "Status code already exists")
	}
	return helper.JsonCreated(c, "Reservation status created", m)
}

func (h *ReservationStatusController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req rsDTO.UpdateReservationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m rsModel.ReservationStatusModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		return helper.DBErrToFiber(err, "Reservation status not found", "")
	}
	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.DBErrToFiber(err, "Reservation status not found", "Status code already exists")
	}
	return helper.JsonUpdated(c, "Reservation status updated", m)
}

func (h *ReservationStatusController) Delete(c *fiber.Ctx) error {
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

	res := h.DB.Where("id IN ?", req.IDs).Delete(&rsModel.ReservationStatusModel{})
	if res.Error != nil {
		return helper.DBErrToFiber(res.Error, "Reservation status not found", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Reservation status not found")
	}
	return helper.JsonDeleted(c, "Reservation statuses deleted", fiber.Map{"deleted": res.RowsAffected})
}
