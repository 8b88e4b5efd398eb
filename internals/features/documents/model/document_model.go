package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Model: DocumentModel
========================= */

// DocumentModel stores file metadata only; binary content lives in external
// storage referenced by URL.
type DocumentModel struct {
	DocumentID uuid.UUID `gorm:"type:uuid;primaryKey;column:document_id"`

	// Tenant
	DocumentOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:document_organization_id;index"`

	DocumentOwnerID uuid.UUID `gorm:"type:uuid;not null;column:document_owner_id"`

	DocumentTitle string  `gorm:"type:varchar(160);not null;column:document_title"`
	DocumentURL   string  `gorm:"type:text;not null;column:document_url"`
	DocumentKind  *string `gorm:"type:varchar(60);column:document_kind"`

	DocumentTags pq.StringArray `gorm:"type:text[];column:document_tags"`
	DocumentMeta datatypes.JSON `gorm:"column:document_meta"`

	DocumentCreatedAt time.Time      `gorm:"column:document_created_at;autoCreateTime"`
	DocumentUpdatedAt time.Time      `gorm:"column:document_updated_at;autoUpdateTime"`
	DocumentDeletedAt gorm.DeletedAt `gorm:"column:document_deleted_at;index"`
}

func (DocumentModel) TableName() string { return "documents" }

func (d *DocumentModel) BeforeCreate(tx *gorm.DB) error {
	if d.DocumentID == uuid.Nil {
		d.DocumentID = uuid.New()
	}
	return nil
}
