// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "classhub_backend/internals/features/users/controller"
	"classhub_backend/internals/middlewares"
	authMiddleware "classhub_backend/internals/middlewares/auth"
)

// Public: login + organization bootstrap, each behind its own rate limiter.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuth(db, validator.New())

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// /api/u (any authenticated user)
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.New(db, validator.New())

	r.Get("/me", ctl.GetMe)
	r.Get("/lessons", ctl.MyLessons)
}

// /api/a (account management, admin only)
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.New(db, validator.New())

	users := r.Group("/users", authMiddleware.RequireAdmin())
	users.Post("/", ctl.Create)
	users.Get("/", ctl.List)
}
