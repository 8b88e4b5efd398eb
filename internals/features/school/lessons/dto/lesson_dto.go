package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/school/lessons/model"
	helper "classhub_backend/internals/helpers"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Create: organization_id is forced from the token by the controller.
type CreateLessonRequest struct {
	LessonTitle   string  `json:"lesson_title"   validate:"required,max=160"`
	LessonSubject *string `json:"lesson_subject" validate:"omitempty,max=120"`

	LessonDate      string `json:"lesson_date"       validate:"required,datetime=2006-01-02"`
	LessonStartTime string `json:"lesson_start_time" validate:"required"`
	LessonEndTime   string `json:"lesson_end_time"   validate:"required"`

	LessonTeacherID   string  `json:"lesson_teacher_id"   validate:"required,uuid4"`
	LessonClassroomID *string `json:"lesson_classroom_id" validate:"omitempty,uuid4"`
	LessonGroupID     *string `json:"lesson_group_id"     validate:"omitempty,uuid4"`
}

func (r CreateLessonRequest) ToModel(orgID uuid.UUID) (model.LessonModel, error) {
	date, err := helper.ParseDateYYYYMMDD(r.LessonDate)
	if err != nil {
		return model.LessonModel{}, err
	}
	start, err := helper.ParseMinutesOfDay(r.LessonStartTime)
	if err != nil {
		return model.LessonModel{}, err
	}
	end, err := helper.ParseMinutesOfDay(r.LessonEndTime)
	if err != nil {
		return model.LessonModel{}, err
	}
	teacherID, err := uuid.Parse(r.LessonTeacherID)
	if err != nil {
		return model.LessonModel{}, err
	}

	m := model.LessonModel{
		LessonOrganizationID: orgID,
		LessonTitle:          r.LessonTitle,
		LessonSubject:        helper.TrimPtr(r.LessonSubject),
		LessonDate:           date,
		LessonStartMinutes:   start,
		LessonEndMinutes:     end,
		LessonTeacherID:      teacherID,
	}
	if r.LessonClassroomID != nil {
		id, err := uuid.Parse(*r.LessonClassroomID)
		if err != nil {
			return model.LessonModel{}, err
		}
		m.LessonClassroomID = &id
	}
	if r.LessonGroupID != nil {
		id, err := uuid.Parse(*r.LessonGroupID)
		if err != nil {
			return model.LessonModel{}, err
		}
		m.LessonGroupID = &id
	}
	return m, nil
}

// Patch (partial). Weekday is always recomputed when the date moves.
type PatchLessonRequest struct {
	LessonTitle   *string `json:"lesson_title"   validate:"omitempty,max=160"`
	LessonSubject *string `json:"lesson_subject" validate:"omitempty,max=120"`

	LessonDate      *string `json:"lesson_date"       validate:"omitempty,datetime=2006-01-02"`
	LessonStartTime *string `json:"lesson_start_time" validate:"omitempty"`
	LessonEndTime   *string `json:"lesson_end_time"   validate:"omitempty"`

	LessonTeacherID   *string `json:"lesson_teacher_id"   validate:"omitempty,uuid4"`
	LessonClassroomID *string `json:"lesson_classroom_id" validate:"omitempty,uuid4"`
	LessonGroupID     *string `json:"lesson_group_id"     validate:"omitempty,uuid4"`
}

func (r PatchLessonRequest) Apply(m *model.LessonModel) error {
	if r.LessonTitle != nil {
		m.LessonTitle = *r.LessonTitle
	}
	if r.LessonSubject != nil {
		m.LessonSubject = helper.TrimPtr(r.LessonSubject)
	}
	if r.LessonDate != nil {
		date, err := helper.ParseDateYYYYMMDD(*r.LessonDate)
		if err != nil {
			return err
		}
		m.LessonDate = date
	}
	if r.LessonStartTime != nil {
		start, err := helper.ParseMinutesOfDay(*r.LessonStartTime)
		if err != nil {
			return err
		}
		m.LessonStartMinutes = start
	}
	if r.LessonEndTime != nil {
		end, err := helper.ParseMinutesOfDay(*r.LessonEndTime)
		if err != nil {
			return err
		}
		m.LessonEndMinutes = end
	}
	if r.LessonTeacherID != nil {
		id, err := uuid.Parse(*r.LessonTeacherID)
		if err != nil {
			return err
		}
		m.LessonTeacherID = id
	}
	if r.LessonClassroomID != nil {
		id, err := uuid.Parse(*r.LessonClassroomID)
		if err != nil {
			return err
		}
		m.LessonClassroomID = &id
	}
	if r.LessonGroupID != nil {
		id, err := uuid.Parse(*r.LessonGroupID)
		if err != nil {
			return err
		}
		m.LessonGroupID = &id
	}
	return nil
}

/* =========================================================
   2) LIST QUERY
   ========================================================= */

type ListLessonQuery struct {
	DateFrom  *string `query:"date_from"  validate:"omitempty,datetime=2006-01-02"`
	DateTo    *string `query:"date_to"    validate:"omitempty,datetime=2006-01-02"`
	TeacherID *string `query:"teacher_id" validate:"omitempty,uuid4"`
	GroupID   *string `query:"group_id"   validate:"omitempty,uuid4"`
	Completed *bool   `query:"completed"  validate:"omitempty"`
	Canceled  *bool   `query:"canceled"   validate:"omitempty"`
}

/* =========================================================
   3) RESPONSES
   ========================================================= */

type LessonResponse struct {
	LessonID             uuid.UUID `json:"lesson_id"`
	LessonOrganizationID uuid.UUID `json:"lesson_organization_id"`

	LessonTitle   string  `json:"lesson_title"`
	LessonSubject *string `json:"lesson_subject,omitempty"`

	LessonDate      string `json:"lesson_date"`
	LessonDayOfWeek int    `json:"lesson_day_of_week"`
	LessonStartTime string `json:"lesson_start_time"`
	LessonEndTime   string `json:"lesson_end_time"`

	LessonTeacherID   uuid.UUID  `json:"lesson_teacher_id"`
	LessonClassroomID *uuid.UUID `json:"lesson_classroom_id,omitempty"`
	LessonGroupID     *uuid.UUID `json:"lesson_group_id,omitempty"`
	LessonTemplateID  *uuid.UUID `json:"lesson_template_id,omitempty"`

	LessonIsCanceled  bool `json:"lesson_is_canceled"`
	LessonIsCompleted bool `json:"lesson_is_completed"`

	LessonCreatedAt time.Time `json:"lesson_created_at"`
	LessonUpdatedAt time.Time `json:"lesson_updated_at"`
}

func FromModel(m *model.LessonModel) LessonResponse {
	return LessonResponse{
		LessonID:             m.LessonID,
		LessonOrganizationID: m.LessonOrganizationID,
		LessonTitle:          m.LessonTitle,
		LessonSubject:        m.LessonSubject,
		LessonDate:           m.LessonDate.Format("2006-01-02"),
		LessonDayOfWeek:      m.LessonDayOfWeek,
		LessonStartTime:      helper.FormatMinutesOfDay(m.LessonStartMinutes),
		LessonEndTime:        helper.FormatMinutesOfDay(m.LessonEndMinutes),
		LessonTeacherID:      m.LessonTeacherID,
		LessonClassroomID:    m.LessonClassroomID,
		LessonGroupID:        m.LessonGroupID,
		LessonTemplateID:     m.LessonTemplateID,
		LessonIsCanceled:     m.LessonIsCanceled,
		LessonIsCompleted:    m.LessonIsCompleted,
		LessonCreatedAt:      m.LessonCreatedAt,
		LessonUpdatedAt:      m.LessonUpdatedAt,
	}
}

func FromModels(list []model.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
