// file: internals/features/school/grades/service/record.go
package service

import (
	"errors"

	"gorm.io/gorm"

	attendanceModel "classhub_backend/internals/features/school/attendance/model"
	m "classhub_backend/internals/features/school/grades/model"
)

var ErrStudentNotPresent = errors.New("student was not present at the lesson")

// RecordGrade inserts the grade after checking, inside the same transaction,
// that a was_present attendance row exists for the pair. A concurrent
// attendance flip cannot slip a grade past the check, and the unique index on
// (lesson, student) rejects double grading.
func RecordGrade(tx *gorm.DB, row *m.GradeModel) error {
	var present int64
	if err := tx.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_organization_id = ? AND attendance_lesson_id = ? AND attendance_student_id = ? AND attendance_was_present = ?",
			row.GradeOrganizationID, row.GradeLessonID, row.GradeStudentID, true).
		Count(&present).Error; err != nil {
		return err
	}
	if present == 0 {
		return ErrStudentNotPresent
	}
	return tx.Create(row).Error
}
