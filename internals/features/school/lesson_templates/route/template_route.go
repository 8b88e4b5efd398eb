// file: internals/features/school/lesson_templates/route/template_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	templateController "classhub_backend/internals/features/school/lesson_templates/controller"
)

func TemplateAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := templateController.New(db, validator.New())

	templates := r.Group("/lesson-templates")
	templates.Post("/", ctl.Create)
	templates.Get("/", ctl.List)
	templates.Get("/:id", ctl.GetByID)
	templates.Patch("/:id", ctl.Patch)
	templates.Delete("/:id", ctl.Delete)
}
