package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "perpusku_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	roleCtrl := userController.NewUserRoleController(db)

	u := r.Group("/users")
	u.Get("/", userCtrl.List)
	u.Post("/", userCtrl.Create)
	u.Put("/:id", userCtrl.Update)
	u.Delete("/", userCtrl.Delete)

	ro := r.Group("/user-roles")
	ro.Get("/", roleCtrl.List)
	ro.Post("/", roleCtrl.Create)
	ro.Put("/:id", roleCtrl.Update)
	ro.Delete("/", roleCtrl.Delete)
}

func UserSelfRoutes(r fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	r.Get("/users/me", userCtrl.GetMe)
}
