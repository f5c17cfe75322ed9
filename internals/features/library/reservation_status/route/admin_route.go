package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rsController "perpusku_backend/internals/features/library/reservation_status/controller"
)

func ReservationStatusAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := rsController.NewReservationStatusController(db)

	g := r.Group("/reservation-statuses")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/", ctrl.Delete)
}
