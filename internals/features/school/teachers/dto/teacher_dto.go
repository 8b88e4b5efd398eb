package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/school/teachers/model"
	helper "classhub_backend/internals/helpers"
)

type CreateTeacherRequest struct {
	TeacherName    string  `json:"teacher_name"    validate:"required,min=2,max=120"`
	TeacherSubject *string `json:"teacher_subject" validate:"omitempty,max=120"`
	TeacherPhone   *string `json:"teacher_phone"   validate:"omitempty,max=32"`
	TeacherUserID  *string `json:"teacher_user_id" validate:"omitempty,uuid4"`
}

func (r CreateTeacherRequest) ToModel(orgID uuid.UUID) (model.TeacherModel, error) {
	m := model.TeacherModel{
		TeacherOrganizationID: orgID,
		TeacherName:           r.TeacherName,
		TeacherSubject:        helper.TrimPtr(r.TeacherSubject),
		TeacherPhone:          helper.TrimPtr(r.TeacherPhone),
	}
	if r.TeacherUserID != nil {
		id, err := uuid.Parse(*r.TeacherUserID)
		if err != nil {
			return model.TeacherModel{}, err
		}
		m.TeacherUserID = &id
	}
	return m, nil
}

type PatchTeacherRequest struct {
	TeacherName    *string `json:"teacher_name"    validate:"omitempty,min=2,max=120"`
	TeacherSubject *string `json:"teacher_subject" validate:"omitempty,max=120"`
	TeacherPhone   *string `json:"teacher_phone"   validate:"omitempty,max=32"`
}

func (r PatchTeacherRequest) Apply(m *model.TeacherModel) {
	if r.TeacherName != nil {
		m.TeacherName = *r.TeacherName
	}
	if r.TeacherSubject != nil {
		m.TeacherSubject = helper.TrimPtr(r.TeacherSubject)
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = helper.TrimPtr(r.TeacherPhone)
	}
}

type TeacherResponse struct {
	TeacherID             uuid.UUID  `json:"teacher_id"`
	TeacherOrganizationID uuid.UUID  `json:"teacher_organization_id"`
	TeacherUserID         *uuid.UUID `json:"teacher_user_id,omitempty"`
	TeacherName           string     `json:"teacher_name"`
	TeacherSubject        *string    `json:"teacher_subject,omitempty"`
	TeacherPhone          *string    `json:"teacher_phone,omitempty"`
	TeacherCreatedAt      time.Time  `json:"teacher_created_at"`
	TeacherUpdatedAt      time.Time  `json:"teacher_updated_at"`
}

func FromModel(m *model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:             m.TeacherID,
		TeacherOrganizationID: m.TeacherOrganizationID,
		TeacherUserID:         m.TeacherUserID,
		TeacherName:           m.TeacherName,
		TeacherSubject:        m.TeacherSubject,
		TeacherPhone:          m.TeacherPhone,
		TeacherCreatedAt:      m.TeacherCreatedAt,
		TeacherUpdatedAt:      m.TeacherUpdatedAt,
	}
}

func FromModels(list []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
