// file: internals/features/organizations/route/organization_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	organizationController "classhub_backend/internals/features/organizations/controller"
	authMiddleware "classhub_backend/internals/middlewares/auth"
)

func OrganizationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := organizationController.New(db, validator.New())

	org := r.Group("/organization")
	org.Get("/", ctl.GetMe)
	// Settings changes are admin-only, not teacher.
	org.Patch("/", authMiddleware.RequireAdmin(), ctl.Patch)
}
