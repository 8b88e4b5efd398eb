package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: StudentGroupModel
========================= */

type StudentGroupModel struct {
	StudentGroupID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_group_id"`

	// Tenant
	StudentGroupOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:student_group_organization_id;index"`

	StudentGroupName    string     `gorm:"type:varchar(120);not null;column:student_group_name"`
	StudentGroupSubject *string    `gorm:"type:varchar(120);column:student_group_subject"`
	StudentGroupTeacher *uuid.UUID `gorm:"type:uuid;column:student_group_teacher_id;index"`

	StudentGroupCreatedAt time.Time      `gorm:"column:student_group_created_at;autoCreateTime"`
	StudentGroupUpdatedAt time.Time      `gorm:"column:student_group_updated_at;autoUpdateTime"`
	StudentGroupDeletedAt gorm.DeletedAt `gorm:"column:student_group_deleted_at;index"`
}

func (StudentGroupModel) TableName() string { return "student_groups" }

func (g *StudentGroupModel) BeforeCreate(tx *gorm.DB) error {
	if g.StudentGroupID == uuid.Nil {
		g.StudentGroupID = uuid.New()
	}
	return nil
}

/* =========================
   Model: GroupStudentModel (membership)
========================= */

type GroupStudentModel struct {
	GroupStudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:group_student_id"`

	GroupStudentOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:group_student_organization_id;index"`
	GroupStudentGroupID        uuid.UUID `gorm:"type:uuid;not null;column:group_student_group_id;uniqueIndex:uq_group_students,priority:1"`
	GroupStudentStudentID      uuid.UUID `gorm:"type:uuid;not null;column:group_student_student_id;uniqueIndex:uq_group_students,priority:2"`

	GroupStudentCreatedAt time.Time `gorm:"column:group_student_created_at;autoCreateTime"`
}

func (GroupStudentModel) TableName() string { return "group_students" }

func (m *GroupStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.GroupStudentID == uuid.Nil {
		m.GroupStudentID = uuid.New()
	}
	return nil
}
