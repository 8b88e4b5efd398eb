package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: LessonTemplateModel
========================= */

// LessonTemplateModel = recurrence rule + default lesson fields.
// Descriptive fields may change later and propagate to not-yet-completed lessons.
type LessonTemplateModel struct {
	// PK
	LessonTemplateID uuid.UUID `gorm:"type:uuid;primaryKey;column:lesson_template_id"`

	// Tenant & owner
	LessonTemplateOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:lesson_template_organization_id;index"`
	LessonTemplateOwnerID        uuid.UUID `gorm:"type:uuid;not null;column:lesson_template_owner_id"`

	LessonTemplateTitle   string  `gorm:"type:varchar(160);not null;column:lesson_template_title"`
	LessonTemplateSubject *string `gorm:"type:varchar(120);column:lesson_template_subject"`

	// Default time slot
	LessonTemplateStartMinutes int `gorm:"not null;column:lesson_template_start_minutes"`
	LessonTemplateEndMinutes   int `gorm:"not null;column:lesson_template_end_minutes"`

	// Resources
	LessonTemplateTeacherID   uuid.UUID  `gorm:"type:uuid;not null;column:lesson_template_teacher_id;index"`
	LessonTemplateClassroomID *uuid.UUID `gorm:"type:uuid;column:lesson_template_classroom_id"`
	LessonTemplateGroupID     *uuid.UUID `gorm:"type:uuid;column:lesson_template_group_id"`

	// Recurrence anchors (fixed at creation)
	LessonTemplateIntervalDays int        `gorm:"not null;column:lesson_template_interval_days"`
	LessonTemplateStartDate    time.Time  `gorm:"type:date;not null;column:lesson_template_start_date"`
	LessonTemplateEndDate      *time.Time `gorm:"type:date;column:lesson_template_end_date"`

	LessonTemplateCreatedAt time.Time      `gorm:"column:lesson_template_created_at;autoCreateTime"`
	LessonTemplateUpdatedAt time.Time      `gorm:"column:lesson_template_updated_at;autoUpdateTime"`
	LessonTemplateDeletedAt gorm.DeletedAt `gorm:"column:lesson_template_deleted_at;index"`
}

func (LessonTemplateModel) TableName() string { return "lesson_templates" }

func (t *LessonTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if t.LessonTemplateID == uuid.Nil {
		t.LessonTemplateID = uuid.New()
	}
	return nil
}
