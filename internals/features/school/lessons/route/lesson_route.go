// file: internals/features/school/lessons/route/lesson_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonController "classhub_backend/internals/features/school/lessons/controller"
)

func LessonAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lessonController.New(db, validator.New())

	lessons := r.Group("/lessons")
	lessons.Post("/", ctl.Create)
	lessons.Get("/", ctl.List)
	lessons.Get("/:id", ctl.GetByID)
	lessons.Patch("/:id", ctl.Patch)
	lessons.Post("/:id/cancel", ctl.Cancel)
	lessons.Delete("/:id", ctl.Delete)
}
