package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: LessonModel
========================= */

type LessonModel struct {
	// PK
	LessonID uuid.UUID `gorm:"type:uuid;primaryKey;column:lesson_id"`

	// Tenant
	LessonOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:lesson_organization_id;index"`

	LessonTitle   string  `gorm:"type:varchar(160);not null;column:lesson_title"`
	LessonSubject *string `gorm:"type:varchar(120);column:lesson_subject"`

	// Occurrence
	LessonDate time.Time `gorm:"type:date;not null;column:lesson_date;index"`
	// ISO weekday 1..7, always recomputed from LessonDate on save.
	LessonDayOfWeek    int `gorm:"not null;column:lesson_day_of_week"`
	LessonStartMinutes int `gorm:"not null;column:lesson_start_minutes"`
	LessonEndMinutes   int `gorm:"not null;column:lesson_end_minutes"`

	// Resources. Classroom & group optional (null = no conflict check on that axis)
	LessonTeacherID   uuid.UUID  `gorm:"type:uuid;not null;column:lesson_teacher_id;index"`
	LessonClassroomID *uuid.UUID `gorm:"type:uuid;column:lesson_classroom_id;index"`
	LessonGroupID     *uuid.UUID `gorm:"type:uuid;column:lesson_group_id;index"`

	// Back-reference to the generating template, nil for one-off lessons.
	LessonTemplateID *uuid.UUID `gorm:"type:uuid;column:lesson_template_id;index"`

	LessonIsCanceled  bool `gorm:"not null;default:false;column:lesson_is_canceled"`
	LessonIsCompleted bool `gorm:"not null;default:false;column:lesson_is_completed"`

	LessonCreatedAt time.Time      `gorm:"column:lesson_created_at;autoCreateTime"`
	LessonUpdatedAt time.Time      `gorm:"column:lesson_updated_at;autoUpdateTime"`
	LessonDeletedAt gorm.DeletedAt `gorm:"column:lesson_deleted_at;index"`
}

func (LessonModel) TableName() string { return "lessons" }

func (l *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if l.LessonID == uuid.Nil {
		l.LessonID = uuid.New()
	}
	return nil
}

// BeforeSave recomputes the weekday from the date; it is derived data and
// never trusted as input.
func (l *LessonModel) BeforeSave(tx *gorm.DB) error {
	l.LessonDayOfWeek = ISOWeekday(l.LessonDate)
	return nil
}

// ISOWeekday maps time.Weekday (Sunday=0) onto ISO-8601 numbering (Mon=1..Sun=7).
func ISOWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
