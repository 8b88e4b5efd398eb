// file: internals/features/school/maintenance/route/maintenance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	maintenanceController "classhub_backend/internals/features/school/maintenance/controller"
	authMiddleware "classhub_backend/internals/middlewares/auth"
)

func MaintenanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := maintenanceController.New(db)

	maintenance := r.Group("/maintenance", authMiddleware.RequireAdmin())
	maintenance.Post("/complete-lessons", ctl.CompleteLessons)
	maintenance.Post("/reconcile-attendance", ctl.ReconcileAttendance)
}
