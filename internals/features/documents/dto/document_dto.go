package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	model "classhub_backend/internals/features/documents/model"
	helper "classhub_backend/internals/helpers"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateDocumentRequest struct {
	DocumentTitle string          `json:"document_title" validate:"required,min=1,max=160"`
	DocumentURL   string          `json:"document_url"   validate:"required,url"`
	DocumentKind  *string         `json:"document_kind"  validate:"omitempty,max=60"`
	DocumentTags  []string        `json:"document_tags"  validate:"omitempty,dive,max=60"`
	DocumentMeta  *datatypes.JSON `json:"document_meta"`
}

func (r CreateDocumentRequest) ToModel(orgID, ownerID uuid.UUID) model.DocumentModel {
	m := model.DocumentModel{
		DocumentOrganizationID: orgID,
		DocumentOwnerID:        ownerID,
		DocumentTitle:          r.DocumentTitle,
		DocumentURL:            r.DocumentURL,
		DocumentKind:           helper.TrimPtr(r.DocumentKind),
		DocumentTags:           pq.StringArray(r.DocumentTags),
	}
	if r.DocumentMeta != nil {
		m.DocumentMeta = *r.DocumentMeta
	}
	return m
}

type PatchDocumentRequest struct {
	DocumentTitle *string         `json:"document_title" validate:"omitempty,min=1,max=160"`
	DocumentURL   *string         `json:"document_url"   validate:"omitempty,url"`
	DocumentKind  *string         `json:"document_kind"  validate:"omitempty,max=60"`
	DocumentTags  []string        `json:"document_tags"  validate:"omitempty,dive,max=60"`
	DocumentMeta  *datatypes.JSON `json:"document_meta"`
}

func (r PatchDocumentRequest) Apply(m *model.DocumentModel) {
	if r.DocumentTitle != nil {
		m.DocumentTitle = *r.DocumentTitle
	}
	if r.DocumentURL != nil {
		m.DocumentURL = *r.DocumentURL
	}
	if r.DocumentKind != nil {
		m.DocumentKind = helper.TrimPtr(r.DocumentKind)
	}
	if r.DocumentTags != nil {
		m.DocumentTags = pq.StringArray(r.DocumentTags)
	}
	if r.DocumentMeta != nil {
		m.DocumentMeta = *r.DocumentMeta
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

type DocumentResponse struct {
	DocumentID             uuid.UUID      `json:"document_id"`
	DocumentOrganizationID uuid.UUID      `json:"document_organization_id"`
	DocumentOwnerID        uuid.UUID      `json:"document_owner_id"`
	DocumentTitle          string         `json:"document_title"`
	DocumentURL            string         `json:"document_url"`
	DocumentKind           *string        `json:"document_kind,omitempty"`
	DocumentTags           []string       `json:"document_tags,omitempty"`
	DocumentMeta           datatypes.JSON `json:"document_meta,omitempty"`
	DocumentCreatedAt      time.Time      `json:"document_created_at"`
	DocumentUpdatedAt      time.Time      `json:"document_updated_at"`
}

func FromModel(m *model.DocumentModel) DocumentResponse {
	return DocumentResponse{
		DocumentID:             m.DocumentID,
		DocumentOrganizationID: m.DocumentOrganizationID,
		DocumentOwnerID:        m.DocumentOwnerID,
		DocumentTitle:          m.DocumentTitle,
		DocumentURL:            m.DocumentURL,
		DocumentKind:           m.DocumentKind,
		DocumentTags:           []string(m.DocumentTags),
		DocumentMeta:           m.DocumentMeta,
		DocumentCreatedAt:      m.DocumentCreatedAt,
		DocumentUpdatedAt:      m.DocumentUpdatedAt,
	}
}

func FromModels(list []model.DocumentModel) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
