package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	bookCategoryRoute "perpusku_backend/internals/features/library/book_category/route"
	bookInfoRoute "perpusku_backend/internals/features/library/book_info/route"
	reservationRoute "perpusku_backend/internals/features/library/reservation/route"
	reservationStatusRoute "perpusku_backend/internals/features/library/reservation_status/route"
	authRoute "perpusku_backend/internals/features/users/auth/route"
	userRoute "perpusku_backend/internals/features/users/user/route"
	"perpusku_backend/internals/middlewares"
	middleware "perpusku_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature group under /api.
//
//	/api/auth — public auth endpoints (rate limited per route)
//	/api/a    — staff area, JWT required
//	/api/u    — signed-in user area, JWT required
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", middlewares.GlobalRateLimiter())

	authRoute.AuthRoutes(api, db)

	authGuard := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	admin := api.Group("/a", authGuard)
	bookCategoryRoute.BookCategoryAdminRoutes(admin, db)
	bookInfoRoute.BookInfoAdminRoutes(admin, db)
	reservationStatusRoute.ReservationStatusAdminRoutes(admin, db)
	reservationRoute.BookReservationAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)

	user := api.Group("/u", authGuard)
	userRoute.UserSelfRoutes(user, db)
}
