// file: internals/features/school/groups/route/group_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "classhub_backend/internals/features/school/groups/controller"
)

func GroupAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := groupController.New(db, validator.New())

	groups := r.Group("/groups")
	groups.Post("/", ctl.Create)
	groups.Get("/", ctl.List)
	groups.Get("/:id", ctl.GetByID)
	groups.Patch("/:id", ctl.Patch)
	groups.Delete("/:id", ctl.Delete)

	// membership
	groups.Get("/:id/students", ctl.ListMembers)
	groups.Post("/:id/students", ctl.AddMember)
	groups.Delete("/:id/students/:student_id", ctl.RemoveMember)
}
