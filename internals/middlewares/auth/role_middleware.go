package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"
)

// RequireStaff gates the admin API group: organization admins and teachers.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !(helperAuth.IsAdmin(c) || helperAuth.IsTeacher(c)) {
			return helper.JsonError(c, fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}

// RequireAdmin gates organization settings and user management.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsAdmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}
