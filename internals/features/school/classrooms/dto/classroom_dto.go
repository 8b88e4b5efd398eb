package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/school/classrooms/model"
)

type CreateClassroomRequest struct {
	ClassroomName     string `json:"classroom_name"     validate:"required,min=1,max=120"`
	ClassroomCapacity *int   `json:"classroom_capacity" validate:"omitempty,min=1"`
}

func (r CreateClassroomRequest) ToModel(orgID uuid.UUID) model.ClassroomModel {
	return model.ClassroomModel{
		ClassroomOrganizationID: orgID,
		ClassroomName:           r.ClassroomName,
		ClassroomCapacity:       r.ClassroomCapacity,
	}
}

type PatchClassroomRequest struct {
	ClassroomName     *string `json:"classroom_name"     validate:"omitempty,min=1,max=120"`
	ClassroomCapacity *int    `json:"classroom_capacity" validate:"omitempty,min=1"`
}

func (r PatchClassroomRequest) Apply(m *model.ClassroomModel) {
	if r.ClassroomName != nil {
		m.ClassroomName = *r.ClassroomName
	}
	if r.ClassroomCapacity != nil {
		m.ClassroomCapacity = r.ClassroomCapacity
	}
}

type ClassroomResponse struct {
	ClassroomID             uuid.UUID `json:"classroom_id"`
	ClassroomOrganizationID uuid.UUID `json:"classroom_organization_id"`
	ClassroomName           string    `json:"classroom_name"`
	ClassroomCapacity       *int      `json:"classroom_capacity,omitempty"`
	ClassroomCreatedAt      time.Time `json:"classroom_created_at"`
	ClassroomUpdatedAt      time.Time `json:"classroom_updated_at"`
}

func FromModel(m *model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:             m.ClassroomID,
		ClassroomOrganizationID: m.ClassroomOrganizationID,
		ClassroomName:           m.ClassroomName,
		ClassroomCapacity:       m.ClassroomCapacity,
		ClassroomCreatedAt:      m.ClassroomCreatedAt,
		ClassroomUpdatedAt:      m.ClassroomUpdatedAt,
	}
}

func FromModels(list []model.ClassroomModel) []ClassroomResponse {
	out := make([]ClassroomResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
