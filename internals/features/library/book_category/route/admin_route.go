package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bcController "perpusku_backend/internals/features/library/book_category/controller"
)

func BookCategoryAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := bcController.NewBookCategoryController(db)

	g := r.Group("/book-categories")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/", ctrl.Delete)
}
