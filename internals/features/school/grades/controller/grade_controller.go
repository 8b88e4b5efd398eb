// file: internals/features/school/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"

	d "classhub_backend/internals/features/school/grades/dto"
	m "classhub_backend/internals/features/school/grades/model"
	svc "classhub_backend/internals/features/school/grades/service"
	lessonModel "classhub_backend/internals/features/school/lessons/model"
)

type GradeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *GradeController {
	return &GradeController{DB: db, Validate: v}
}

/*
========================= Record =========================
*/

// POST /api/a/grades
// Requires a present-attendance row for the (student, lesson) pair; checked
// inside the insert tx. Unique index on (lesson, student) rejects double
// grading with 409.
func (ctl *GradeController) Record(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.RecordGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	lessonID := uuid.MustParse(req.GradeLessonID)
	studentID := uuid.MustParse(req.GradeStudentID)

	var lesson lessonModel.LessonModel
	if err := ctl.DB.
		Where("lesson_id = ? AND lesson_organization_id = ?", lessonID, orgID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		return helper.WritePGError(c, err)
	}

	row := m.GradeModel{
		GradeOrganizationID: orgID,
		GradeLessonID:       lessonID,
		GradeStudentID:      studentID,
		GradeValue:          req.GradeValue,
		GradeComment:        helper.TrimPtr(req.GradeComment),
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		return svc.RecordGrade(tx, &row)
	})
	if err != nil {
		if errors.Is(err, svc.ErrStudentNotPresent) {
			return helper.JsonErrorWithCode(c, http.StatusUnprocessableEntity, "BUSINESS_RULE", err.Error())
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Grade recorded", d.FromModel(&row))
}

/* =========================
   By lesson / by student
   ========================= */

func (ctl *GradeController) ListByLesson(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	lessonID, err := helper.ParseUUIDParam(c, "lesson_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.GradeModel
	if err := ctl.DB.
		Where("grade_organization_id = ? AND grade_lesson_id = ?", orgID, lessonID).
		Order("grade_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Grades", d.FromModels(rows))
}

func (ctl *GradeController) ListByStudent(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	query := ctl.DB.Model(&m.GradeModel{}).
		Where("grade_organization_id = ? AND grade_student_id = ?", orgID, studentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.GradeModel
	if err := query.
		Order("grade_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Grades", d.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
