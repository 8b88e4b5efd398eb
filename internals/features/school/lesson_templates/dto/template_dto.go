package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/school/lesson_templates/model"
	helper "classhub_backend/internals/helpers"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Create: organization and owner are forced from the token by the controller.
// Start date and interval are recurrence anchors and cannot be changed later.
type CreateLessonTemplateRequest struct {
	LessonTemplateTitle   string  `json:"lesson_template_title"   validate:"required,max=160"`
	LessonTemplateSubject *string `json:"lesson_template_subject" validate:"omitempty,max=120"`

	LessonTemplateStartTime string `json:"lesson_template_start_time" validate:"required"`
	LessonTemplateEndTime   string `json:"lesson_template_end_time"   validate:"required"`

	LessonTemplateTeacherID   string  `json:"lesson_template_teacher_id"   validate:"required,uuid4"`
	LessonTemplateClassroomID *string `json:"lesson_template_classroom_id" validate:"omitempty,uuid4"`
	LessonTemplateGroupID     *string `json:"lesson_template_group_id"     validate:"omitempty,uuid4"`

	LessonTemplateIntervalDays int     `json:"lesson_template_interval_days" validate:"required,min=1"`
	LessonTemplateStartDate    string  `json:"lesson_template_start_date"    validate:"required,datetime=2006-01-02"`
	LessonTemplateEndDate      *string `json:"lesson_template_end_date"      validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateLessonTemplateRequest) ToModel(orgID, ownerID uuid.UUID) (model.LessonTemplateModel, error) {
	start, err := helper.ParseMinutesOfDay(r.LessonTemplateStartTime)
	if err != nil {
		return model.LessonTemplateModel{}, err
	}
	end, err := helper.ParseMinutesOfDay(r.LessonTemplateEndTime)
	if err != nil {
		return model.LessonTemplateModel{}, err
	}
	startDate, err := helper.ParseDateYYYYMMDD(r.LessonTemplateStartDate)
	if err != nil {
		return model.LessonTemplateModel{}, err
	}
	teacherID, err := uuid.Parse(r.LessonTemplateTeacherID)
	if err != nil {
		return model.LessonTemplateModel{}, err
	}

	m := model.LessonTemplateModel{
		LessonTemplateOrganizationID: orgID,
		LessonTemplateOwnerID:        ownerID,
		LessonTemplateTitle:          r.LessonTemplateTitle,
		LessonTemplateSubject:        helper.TrimPtr(r.LessonTemplateSubject),
		LessonTemplateStartMinutes:   start,
		LessonTemplateEndMinutes:     end,
		LessonTemplateTeacherID:      teacherID,
		LessonTemplateIntervalDays:   r.LessonTemplateIntervalDays,
		LessonTemplateStartDate:      startDate,
	}
	if r.LessonTemplateClassroomID != nil {
		id, err := uuid.Parse(*r.LessonTemplateClassroomID)
		if err != nil {
			return model.LessonTemplateModel{}, err
		}
		m.LessonTemplateClassroomID = &id
	}
	if r.LessonTemplateGroupID != nil {
		id, err := uuid.Parse(*r.LessonTemplateGroupID)
		if err != nil {
			return model.LessonTemplateModel{}, err
		}
		m.LessonTemplateGroupID = &id
	}
	if r.LessonTemplateEndDate != nil {
		endDate, err := helper.ParseDateYYYYMMDD(*r.LessonTemplateEndDate)
		if err != nil {
			return model.LessonTemplateModel{}, err
		}
		m.LessonTemplateEndDate = &endDate
	}
	return m, nil
}

// Patch (partial): only the mutable descriptive fields. Edits propagate to
// every linked lesson that has not completed yet.
type PatchLessonTemplateRequest struct {
	LessonTemplateTitle   *string `json:"lesson_template_title"   validate:"omitempty,max=160"`
	LessonTemplateSubject *string `json:"lesson_template_subject" validate:"omitempty,max=120"`

	LessonTemplateStartTime *string `json:"lesson_template_start_time" validate:"omitempty"`
	LessonTemplateEndTime   *string `json:"lesson_template_end_time"   validate:"omitempty"`

	LessonTemplateTeacherID   *string `json:"lesson_template_teacher_id"   validate:"omitempty,uuid4"`
	LessonTemplateClassroomID *string `json:"lesson_template_classroom_id" validate:"omitempty,uuid4"`
	LessonTemplateGroupID     *string `json:"lesson_template_group_id"     validate:"omitempty,uuid4"`
}

func (r PatchLessonTemplateRequest) Apply(m *model.LessonTemplateModel) error {
	if r.LessonTemplateTitle != nil {
		m.LessonTemplateTitle = *r.LessonTemplateTitle
	}
	if r.LessonTemplateSubject != nil {
		m.LessonTemplateSubject = helper.TrimPtr(r.LessonTemplateSubject)
	}
	if r.LessonTemplateStartTime != nil {
		start, err := helper.ParseMinutesOfDay(*r.LessonTemplateStartTime)
		if err != nil {
			return err
		}
		m.LessonTemplateStartMinutes = start
	}
	if r.LessonTemplateEndTime != nil {
		end, err := helper.ParseMinutesOfDay(*r.LessonTemplateEndTime)
		if err != nil {
			return err
		}
		m.LessonTemplateEndMinutes = end
	}
	if r.LessonTemplateTeacherID != nil {
		id, err := uuid.Parse(*r.LessonTemplateTeacherID)
		if err != nil {
			return err
		}
		m.LessonTemplateTeacherID = id
	}
	if r.LessonTemplateClassroomID != nil {
		id, err := uuid.Parse(*r.LessonTemplateClassroomID)
		if err != nil {
			return err
		}
		m.LessonTemplateClassroomID = &id
	}
	if r.LessonTemplateGroupID != nil {
		id, err := uuid.Parse(*r.LessonTemplateGroupID)
		if err != nil {
			return err
		}
		m.LessonTemplateGroupID = &id
	}
	return nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type LessonTemplateResponse struct {
	LessonTemplateID             uuid.UUID `json:"lesson_template_id"`
	LessonTemplateOrganizationID uuid.UUID `json:"lesson_template_organization_id"`
	LessonTemplateOwnerID        uuid.UUID `json:"lesson_template_owner_id"`

	LessonTemplateTitle   string  `json:"lesson_template_title"`
	LessonTemplateSubject *string `json:"lesson_template_subject,omitempty"`

	LessonTemplateStartTime string `json:"lesson_template_start_time"`
	LessonTemplateEndTime   string `json:"lesson_template_end_time"`

	LessonTemplateTeacherID   uuid.UUID  `json:"lesson_template_teacher_id"`
	LessonTemplateClassroomID *uuid.UUID `json:"lesson_template_classroom_id,omitempty"`
	LessonTemplateGroupID     *uuid.UUID `json:"lesson_template_group_id,omitempty"`

	LessonTemplateIntervalDays int     `json:"lesson_template_interval_days"`
	LessonTemplateStartDate    string  `json:"lesson_template_start_date"`
	LessonTemplateEndDate      *string `json:"lesson_template_end_date,omitempty"`

	LessonTemplateCreatedAt time.Time `json:"lesson_template_created_at"`
	LessonTemplateUpdatedAt time.Time `json:"lesson_template_updated_at"`
}

func FromModel(m *model.LessonTemplateModel) LessonTemplateResponse {
	var endDate *string
	if m.LessonTemplateEndDate != nil {
		s := m.LessonTemplateEndDate.Format("2006-01-02")
		endDate = &s
	}
	return LessonTemplateResponse{
		LessonTemplateID:             m.LessonTemplateID,
		LessonTemplateOrganizationID: m.LessonTemplateOrganizationID,
		LessonTemplateOwnerID:        m.LessonTemplateOwnerID,
		LessonTemplateTitle:          m.LessonTemplateTitle,
		LessonTemplateSubject:        m.LessonTemplateSubject,
		LessonTemplateStartTime:      helper.FormatMinutesOfDay(m.LessonTemplateStartMinutes),
		LessonTemplateEndTime:        helper.FormatMinutesOfDay(m.LessonTemplateEndMinutes),
		LessonTemplateTeacherID:      m.LessonTemplateTeacherID,
		LessonTemplateClassroomID:    m.LessonTemplateClassroomID,
		LessonTemplateGroupID:        m.LessonTemplateGroupID,
		LessonTemplateIntervalDays:   m.LessonTemplateIntervalDays,
		LessonTemplateStartDate:      m.LessonTemplateStartDate.Format("2006-01-02"),
		LessonTemplateEndDate:        endDate,
		LessonTemplateCreatedAt:      m.LessonTemplateCreatedAt,
		LessonTemplateUpdatedAt:      m.LessonTemplateUpdatedAt,
	}
}

func FromModels(list []model.LessonTemplateModel) []LessonTemplateResponse {
	out := make([]LessonTemplateResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
