// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	UserRoutes "classhub_backend/internals/features/users/route"
)

/* ===================== USER (PRIVATE) ===================== */
// Endpoints behind a user token only; no staff role required.
func PrivateUserRoutes(r fiber.Router, db *gorm.DB) {
	UserRoutes.UserRoutes(r, db)
}
