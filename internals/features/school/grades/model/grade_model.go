package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: GradeModel
========================= */

// Exactly one grade per (student, lesson); the unique index is the enforcing
// constraint, application logic is only the first line of defense.
type GradeModel struct {
	GradeID uuid.UUID `gorm:"type:uuid;primaryKey;column:grade_id"`

	// Tenant
	GradeOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:grade_organization_id;index"`

	GradeLessonID  uuid.UUID `gorm:"type:uuid;not null;column:grade_lesson_id;uniqueIndex:uq_grades_lesson_student,priority:1"`
	GradeStudentID uuid.UUID `gorm:"type:uuid;not null;column:grade_student_id;uniqueIndex:uq_grades_lesson_student,priority:2"`

	// 2..5 scale
	GradeValue   int     `gorm:"not null;column:grade_value"`
	GradeComment *string `gorm:"type:varchar(500);column:grade_comment"`

	GradeCreatedAt time.Time `gorm:"column:grade_created_at;autoCreateTime"`
	GradeUpdatedAt time.Time `gorm:"column:grade_updated_at;autoUpdateTime"`
}

func (GradeModel) TableName() string { return "grades" }

func (g *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if g.GradeID == uuid.Nil {
		g.GradeID = uuid.New()
	}
	return nil
}
