// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "classhub_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.New(db, validator.New())

	students := r.Group("/students")
	students.Post("/", ctl.Create)
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Patch("/:id", ctl.Patch)
	students.Delete("/:id", ctl.Delete)
}
