package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/school/attendance/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

// Upsert: one row per (student, lesson); repeated calls overwrite the flag.
type RecordAttendanceRequest struct {
	AttendanceLessonID   string `json:"attendance_lesson_id"  validate:"required,uuid4"`
	AttendanceStudentID  string `json:"attendance_student_id" validate:"required,uuid4"`
	AttendanceWasPresent bool   `json:"attendance_was_present"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type AttendanceResponse struct {
	AttendanceID             uuid.UUID `json:"attendance_id"`
	AttendanceOrganizationID uuid.UUID `json:"attendance_organization_id"`
	AttendanceLessonID       uuid.UUID `json:"attendance_lesson_id"`
	AttendanceStudentID      uuid.UUID `json:"attendance_student_id"`
	AttendanceWasPresent     bool      `json:"attendance_was_present"`
	AttendanceCreatedAt      time.Time `json:"attendance_created_at"`
	AttendanceUpdatedAt      time.Time `json:"attendance_updated_at"`
}

func FromModel(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:             m.AttendanceID,
		AttendanceOrganizationID: m.AttendanceOrganizationID,
		AttendanceLessonID:       m.AttendanceLessonID,
		AttendanceStudentID:      m.AttendanceStudentID,
		AttendanceWasPresent:     m.AttendanceWasPresent,
		AttendanceCreatedAt:      m.AttendanceCreatedAt,
		AttendanceUpdatedAt:      m.AttendanceUpdatedAt,
	}
}

func FromModels(list []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
