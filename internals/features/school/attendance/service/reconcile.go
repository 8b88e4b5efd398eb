package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	orgModel "classhub_backend/internals/features/organizations/model"
	attendanceModel "classhub_backend/internals/features/school/attendance/model"
	lessonModel "classhub_backend/internals/features/school/lessons/model"
)

/* =========================
   Attendance reconciliation
========================= */

// ReconcileAttendance back-fills absent rows for completed group lessons.
// No explicit record after the lesson = absent. Only students with no row
// at all get one, so re-running changes nothing. One tx per organization.
// Lessons without a group have no roster, skipped.
func ReconcileAttendance(db *gorm.DB, orgs []orgModel.OrganizationModel) map[uuid.UUID]int64 {
	results := make(map[uuid.UUID]int64)

	for _, org := range orgs {
		var inserted int64
		err := db.Transaction(func(tx *gorm.DB) error {
			var lessons []lessonModel.LessonModel
			if err := tx.
				Where("lesson_organization_id = ? AND lesson_is_completed = TRUE AND lesson_is_canceled = FALSE AND lesson_group_id IS NOT NULL",
					org.OrganizationID).
				Find(&lessons).Error; err != nil {
				return err
			}

			for _, lesson := range lessons {
				var missing []uuid.UUID
				if err := tx.Raw(`
					SELECT gs.group_student_student_id
					FROM group_students gs
					WHERE gs.group_student_group_id = ?
					  AND gs.group_student_organization_id = ?
					  AND NOT EXISTS (
						SELECT 1 FROM attendances a
						WHERE a.attendance_lesson_id = ?
						  AND a.attendance_student_id = gs.group_student_student_id
					  )`,
					*lesson.LessonGroupID, org.OrganizationID, lesson.LessonID,
				).Scan(&missing).Error; err != nil {
					return err
				}
				if len(missing) == 0 {
					continue
				}

				rows := make([]attendanceModel.AttendanceModel, 0, len(missing))
				for _, studentID := range missing {
					rows = append(rows, attendanceModel.AttendanceModel{
						AttendanceOrganizationID: org.OrganizationID,
						AttendanceLessonID:       lesson.LessonID,
						AttendanceStudentID:      studentID,
						AttendanceWasPresent:     false,
					})
				}
				if err := tx.CreateInBatches(&rows, 200).Error; err != nil {
					return err
				}
				inserted += int64(len(rows))
			}
			return nil
		})
		if err != nil {
			log.Printf("[SWEEP ERROR] org=%s reconcile: %v", org.OrganizationID, err)
			continue
		}
		if inserted > 0 {
			results[org.OrganizationID] = inserted
		}
	}
	return results
}
