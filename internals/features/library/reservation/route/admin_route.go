package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	brController "perpusku_backend/internals/features/library/reservation/controller"
)

func BookReservationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := brController.NewBookReservationController(db)

	g := r.Group("/book-reservations")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/", ctrl.Delete)

	// Stock position is computed from active reservations, so it lives here.
	r.Get("/stock-position", ctrl.StockPosition)
}
