package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/school/students/model"
	helper "classhub_backend/internals/helpers"
)

type CreateStudentRequest struct {
	StudentName   string  `json:"student_name"    validate:"required,min=2,max=120"`
	StudentPhone  *string `json:"student_phone"   validate:"omitempty,max=32"`
	StudentUserID *string `json:"student_user_id" validate:"omitempty,uuid4"`
}

func (r CreateStudentRequest) ToModel(orgID uuid.UUID) (model.StudentModel, error) {
	m := model.StudentModel{
		StudentOrganizationID: orgID,
		StudentName:           r.StudentName,
		StudentPhone:          helper.TrimPtr(r.StudentPhone),
	}
	if r.StudentUserID != nil {
		id, err := uuid.Parse(*r.StudentUserID)
		if err != nil {
			return model.StudentModel{}, err
		}
		m.StudentUserID = &id
	}
	return m, nil
}

type PatchStudentRequest struct {
	StudentName  *string `json:"student_name"  validate:"omitempty,min=2,max=120"`
	StudentPhone *string `json:"student_phone" validate:"omitempty,max=32"`
}

func (r PatchStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentPhone != nil {
		m.StudentPhone = helper.TrimPtr(r.StudentPhone)
	}
}

type StudentResponse struct {
	StudentID             uuid.UUID  `json:"student_id"`
	StudentOrganizationID uuid.UUID  `json:"student_organization_id"`
	StudentUserID         *uuid.UUID `json:"student_user_id,omitempty"`
	StudentName           string     `json:"student_name"`
	StudentPhone          *string    `json:"student_phone,omitempty"`
	StudentCreatedAt      time.Time  `json:"student_created_at"`
	StudentUpdatedAt      time.Time  `json:"student_updated_at"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:             m.StudentID,
		StudentOrganizationID: m.StudentOrganizationID,
		StudentUserID:         m.StudentUserID,
		StudentName:           m.StudentName,
		StudentPhone:          m.StudentPhone,
		StudentCreatedAt:      m.StudentCreatedAt,
		StudentUpdatedAt:      m.StudentUpdatedAt,
	}
}

func FromModels(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
