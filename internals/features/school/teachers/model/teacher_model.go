package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: TeacherModel
========================= */

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_id"`

	// Tenant
	TeacherOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:teacher_organization_id;index"`

	// Optional login account
	TeacherUserID *uuid.UUID `gorm:"type:uuid;column:teacher_user_id;index"`

	TeacherName    string  `gorm:"type:varchar(120);not null;column:teacher_name"`
	TeacherSubject *string `gorm:"type:varchar(120);column:teacher_subject"`
	TeacherPhone   *string `gorm:"type:varchar(32);column:teacher_phone"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (t *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if t.TeacherID == uuid.Nil {
		t.TeacherID = uuid.New()
	}
	return nil
}
