package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: ClassroomModel
========================= */

type ClassroomModel struct {
	ClassroomID uuid.UUID `gorm:"type:uuid;primaryKey;column:classroom_id"`

	// Tenant
	ClassroomOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:classroom_organization_id;index"`

	ClassroomName     string `gorm:"type:varchar(120);not null;column:classroom_name"`
	ClassroomCapacity *int   `gorm:"column:classroom_capacity"`

	ClassroomCreatedAt time.Time      `gorm:"column:classroom_created_at;autoCreateTime"`
	ClassroomUpdatedAt time.Time      `gorm:"column:classroom_updated_at;autoUpdateTime"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (r *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if r.ClassroomID == uuid.Nil {
		r.ClassroomID = uuid.New()
	}
	return nil
}
