// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	UserRoutes "classhub_backend/internals/features/users/route"
)

/* ===================== PUBLIC (no JWT) ===================== */
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api")
	UserRoutes.AuthRoutes(public, db)
}
