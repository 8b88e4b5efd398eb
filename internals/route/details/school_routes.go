// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	DocumentRoutes "classhub_backend/internals/features/documents/route"
	OrganizationRoutes "classhub_backend/internals/features/organizations/route"
	AttendanceRoutes "classhub_backend/internals/features/school/attendance/route"
	ClassroomRoutes "classhub_backend/internals/features/school/classrooms/route"
	GradeRoutes "classhub_backend/internals/features/school/grades/route"
	GroupRoutes "classhub_backend/internals/features/school/groups/route"
	TemplateRoutes "classhub_backend/internals/features/school/lesson_templates/route"
	LessonRoutes "classhub_backend/internals/features/school/lessons/route"
	MaintenanceRoutes "classhub_backend/internals/features/school/maintenance/route"
	StudentRoutes "classhub_backend/internals/features/school/students/route"
	TeacherRoutes "classhub_backend/internals/features/school/teachers/route"
	UserRoutes "classhub_backend/internals/features/users/route"
)

/* ===================== ADMIN (staff) ===================== */
// Everything the office staff touches: scheduling, people, records.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	OrganizationRoutes.OrganizationAdminRoutes(r, db)
	UserRoutes.UserAdminRoutes(r, db)

	TeacherRoutes.TeacherAdminRoutes(r, db)
	ClassroomRoutes.ClassroomAdminRoutes(r, db)
	StudentRoutes.StudentAdminRoutes(r, db)
	GroupRoutes.GroupAdminRoutes(r, db)

	LessonRoutes.LessonAdminRoutes(r, db)
	TemplateRoutes.TemplateAdminRoutes(r, db)
	AttendanceRoutes.AttendanceAdminRoutes(r, db)
	GradeRoutes.GradeAdminRoutes(r, db)

	DocumentRoutes.DocumentAdminRoutes(r, db)
	MaintenanceRoutes.MaintenanceAdminRoutes(r, db)
}
