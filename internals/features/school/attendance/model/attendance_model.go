package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: AttendanceModel
========================= */

// One row per (student, lesson) is the expected cardinality; the
// reconciliation sweep only inserts rows for students with no row yet, and
// the manual endpoint upserts.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id"`

	// Tenant
	AttendanceOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:attendance_organization_id;index"`

	AttendanceLessonID  uuid.UUID `gorm:"type:uuid;not null;column:attendance_lesson_id;index:idx_attendance_lesson_student,priority:1"`
	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_student_id;index:idx_attendance_lesson_student,priority:2"`

	AttendanceWasPresent bool `gorm:"not null;default:false;column:attendance_was_present"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.AttendanceID == uuid.Nil {
		a.AttendanceID = uuid.New()
	}
	return nil
}
