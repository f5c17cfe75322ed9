package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "perpusku_backend/internals/features/users/auth/service"
	"perpusku_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	g := r.Group("/auth")

	g.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	g.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	g.Post("/login-google", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.GoogleLogin(db, c)
	})
	g.Post("/refresh-token", func(c *fiber.Ctx) error {
		return authService.RefreshToken(db, c)
	})
}
