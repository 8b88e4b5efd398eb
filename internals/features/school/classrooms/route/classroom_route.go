// file: internals/features/school/classrooms/route/classroom_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomController "classhub_backend/internals/features/school/classrooms/controller"
)

func ClassroomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classroomController.New(db, validator.New())

	classrooms := r.Group("/classrooms")
	classrooms.Post("/", ctl.Create)
	classrooms.Get("/", ctl.List)
	classrooms.Get("/:id", ctl.GetByID)
	classrooms.Patch("/:id", ctl.Patch)
	classrooms.Delete("/:id", ctl.Delete)
}
