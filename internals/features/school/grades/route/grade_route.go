// file: internals/features/school/grades/route/grade_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "classhub_backend/internals/features/school/grades/controller"
)

func GradeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gradeController.New(db, validator.New())

	grades := r.Group("/grades")
	grades.Post("/", ctl.Record)
	grades.Get("/lesson/:lesson_id", ctl.ListByLesson)
	grades.Get("/student/:student_id", ctl.ListByStudent)
}
