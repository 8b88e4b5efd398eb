package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: StudentModel
========================= */

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id"`

	// Tenant
	StudentOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:student_organization_id;index"`

	// Optional login account
	StudentUserID *uuid.UUID `gorm:"type:uuid;column:student_user_id;index"`

	StudentName  string  `gorm:"type:varchar(120);not null;column:student_name"`
	StudentPhone *string `gorm:"type:varchar(32);column:student_phone"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		s.StudentID = uuid.New()
	}
	return nil
}
