// file: internals/features/documents/route/document_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentController "classhub_backend/internals/features/documents/controller"
)

func DocumentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := documentController.New(db, validator.New())

	docs := r.Group("/documents")
	docs.Post("/", ctl.Create)
	docs.Get("/", ctl.List)
	docs.Get("/:id", ctl.GetByID)
	docs.Patch("/:id", ctl.Patch)
	docs.Delete("/:id", ctl.Delete)
}
