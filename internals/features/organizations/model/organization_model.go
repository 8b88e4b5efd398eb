package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Model: OrganizationModel
========================= */

type OrganizationModel struct {
	// PK
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey;column:organization_id"`

	OrganizationName string  `gorm:"type:varchar(160);not null;column:organization_name"`
	OrganizationSlug *string `gorm:"type:varchar(160);uniqueIndex;column:organization_slug"`

	// Local-time context for the completion sweep.
	OrganizationTimezone string `gorm:"type:varchar(64);not null;default:'UTC';column:organization_timezone"`

	// Business-hours window bounding free-slot search (minutes since midnight).
	OrganizationDayStart int `gorm:"not null;default:480;column:organization_day_start"`
	OrganizationDayEnd   int `gorm:"not null;default:1200;column:organization_day_end"`

	// Fallback recurrence cutoff for templates without their own end date.
	// Nullable on purpose: a missing cutoff is a configuration error the
	// materializer surfaces, never a silent default.
	OrganizationAcademicYearEnd *MonthDay `gorm:"column:organization_academic_year_end"`

	OrganizationSettings datatypes.JSON `gorm:"column:organization_settings"`

	OrganizationCreatedAt time.Time      `gorm:"column:organization_created_at;autoCreateTime"`
	OrganizationUpdatedAt time.Time      `gorm:"column:organization_updated_at;autoUpdateTime"`
	OrganizationDeletedAt gorm.DeletedAt `gorm:"column:organization_deleted_at;index"`
}

func (OrganizationModel) TableName() string { return "organizations" }

func (o *OrganizationModel) BeforeCreate(tx *gorm.DB) error {
	if o.OrganizationID == uuid.Nil {
		o.OrganizationID = uuid.New()
	}
	return nil
}
