// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "classhub_backend/internals/features/school/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceController.New(db, validator.New())

	attendance := r.Group("/attendance")
	attendance.Put("/", ctl.Record)
	attendance.Get("/lesson/:lesson_id", ctl.ListByLesson)
}
