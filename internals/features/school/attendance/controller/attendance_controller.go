// file: internals/features/school/attendance/controller/attendance_controller.go
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

	d "classhub_backend/internals/features/school/attendance/dto"
	m "classhub_backend/internals/features/school/attendance/model"
	lessonModel "classhub_backend/internals/features/school/lessons/model"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

/*
========================= Record (upsert) =========================
*/

// PUT /api/a/attendance
// Mark a student present/absent for a lesson. Overwrites any existing row;
// the reconciliation sweep back-fills absences for everyone never marked.
func (ctl *AttendanceController) Record(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	lessonID := uuid.MustParse(req.AttendanceLessonID)
	studentID := uuid.MustParse(req.AttendanceStudentID)

	// The lesson must exist inside the caller's organization.
	var lesson lessonModel.LessonModel
	if err := ctl.DB.
		Where("lesson_id = ? AND lesson_organization_id = ?", lessonID, orgID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		return helper.WritePGError(c, err)
	}

	var row m.AttendanceModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("attendance_organization_id = ? AND attendance_lesson_id = ? AND attendance_student_id = ?",
				orgID, lessonID, studentID).
			First(&row).Error
		switch {
		case err == nil:
			row.AttendanceWasPresent = req.AttendanceWasPresent
			return tx.Save(&row).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = m.AttendanceModel{
				AttendanceOrganizationID: orgID,
				AttendanceLessonID:       lessonID,
				AttendanceStudentID:      studentID,
				AttendanceWasPresent:     req.AttendanceWasPresent,
			}
			return tx.Create(&row).Error
		default:
			return err
		}
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Attendance recorded", d.FromModel(&row))
}

/* =========================
   By lesson
   ========================= */

func (ctl *AttendanceController) ListByLesson(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	lessonID, err := helper.ParseUUIDParam(c, "lesson_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.AttendanceModel
	if err := ctl.DB.
		Where("attendance_organization_id = ? AND attendance_lesson_id = ?", orgID, lessonID).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Attendance", d.FromModels(rows))
}
