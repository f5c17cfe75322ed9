package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	biController "perpusku_backend/internals/features/library/book_info/controller"
)

func BookInfoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := biController.NewBookInfoController(db)

	g := r.Group("/book-infos")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/", ctrl.Delete)
	g.Post("/:id/cover", ctrl.UploadCover)
}
