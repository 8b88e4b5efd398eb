package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/school/groups/model"
	helper "classhub_backend/internals/helpers"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateStudentGroupRequest struct {
	StudentGroupName    string  `json:"student_group_name"       validate:"required,min=1,max=120"`
	StudentGroupSubject *string `json:"student_group_subject"    validate:"omitempty,max=120"`
	StudentGroupTeacher *string `json:"student_group_teacher_id" validate:"omitempty,uuid4"`
}

func (r CreateStudentGroupRequest) ToModel(orgID uuid.UUID) (model.StudentGroupModel, error) {
	m := model.StudentGroupModel{
		StudentGroupOrganizationID: orgID,
		StudentGroupName:           r.StudentGroupName,
		StudentGroupSubject:        helper.TrimPtr(r.StudentGroupSubject),
	}
	if r.StudentGroupTeacher != nil {
		id, err := uuid.Parse(*r.StudentGroupTeacher)
		if err != nil {
			return model.StudentGroupModel{}, err
		}
		m.StudentGroupTeacher = &id
	}
	return m, nil
}

type PatchStudentGroupRequest struct {
	StudentGroupName    *string `json:"student_group_name"       validate:"omitempty,min=1,max=120"`
	StudentGroupSubject *string `json:"student_group_subject"    validate:"omitempty,max=120"`
	StudentGroupTeacher *string `json:"student_group_teacher_id" validate:"omitempty,uuid4"`
}

func (r PatchStudentGroupRequest) Apply(m *model.StudentGroupModel) error {
	if r.StudentGroupName != nil {
		m.StudentGroupName = *r.StudentGroupName
	}
	if r.StudentGroupSubject != nil {
		m.StudentGroupSubject = helper.TrimPtr(r.StudentGroupSubject)
	}
	if r.StudentGroupTeacher != nil {
		id, err := uuid.Parse(*r.StudentGroupTeacher)
		if err != nil {
			return err
		}
		m.StudentGroupTeacher = &id
	}
	return nil
}

type AddGroupMemberRequest struct {
	GroupStudentStudentID string `json:"group_student_student_id" validate:"required,uuid4"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type StudentGroupResponse struct {
	StudentGroupID             uuid.UUID  `json:"student_group_id"`
	StudentGroupOrganizationID uuid.UUID  `json:"student_group_organization_id"`
	StudentGroupName           string     `json:"student_group_name"`
	StudentGroupSubject        *string    `json:"student_group_subject,omitempty"`
	StudentGroupTeacher        *uuid.UUID `json:"student_group_teacher_id,omitempty"`
	StudentGroupCreatedAt      time.Time  `json:"student_group_created_at"`
	StudentGroupUpdatedAt      time.Time  `json:"student_group_updated_at"`
}

func FromModel(m *model.StudentGroupModel) StudentGroupResponse {
	return StudentGroupResponse{
		StudentGroupID:             m.StudentGroupID,
		StudentGroupOrganizationID: m.StudentGroupOrganizationID,
		StudentGroupName:           m.StudentGroupName,
		StudentGroupSubject:        m.StudentGroupSubject,
		StudentGroupTeacher:        m.StudentGroupTeacher,
		StudentGroupCreatedAt:      m.StudentGroupCreatedAt,
		StudentGroupUpdatedAt:      m.StudentGroupUpdatedAt,
	}
}

func FromModels(list []model.StudentGroupModel) []StudentGroupResponse {
	out := make([]StudentGroupResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

type GroupMemberResponse struct {
	GroupStudentID        uuid.UUID `json:"group_student_id"`
	GroupStudentGroupID   uuid.UUID `json:"group_student_group_id"`
	GroupStudentStudentID uuid.UUID `json:"group_student_student_id"`
	GroupStudentCreatedAt time.Time `json:"group_student_created_at"`
}

func MemberFromModel(m *model.GroupStudentModel) GroupMemberResponse {
	return GroupMemberResponse{
		GroupStudentID:        m.GroupStudentID,
		GroupStudentGroupID:   m.GroupStudentGroupID,
		GroupStudentStudentID: m.GroupStudentStudentID,
		GroupStudentCreatedAt: m.GroupStudentCreatedAt,
	}
}

func MembersFromModels(list []model.GroupStudentModel) []GroupMemberResponse {
	out := make([]GroupMemberResponse, 0, len(list))
	for i := range list {
		out = append(out, MemberFromModel(&list[i]))
	}
	return out
}
