package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/school/grades/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type RecordGradeRequest struct {
	GradeLessonID  string  `json:"grade_lesson_id"  validate:"required,uuid4"`
	GradeStudentID string  `json:"grade_student_id" validate:"required,uuid4"`
	GradeValue     int     `json:"grade_value"      validate:"required,min=2,max=5"`
	GradeComment   *string `json:"grade_comment"    validate:"omitempty,max=500"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type GradeResponse struct {
	GradeID             uuid.UUID `json:"grade_id"`
	GradeOrganizationID uuid.UUID `json:"grade_organization_id"`
	GradeLessonID       uuid.UUID `json:"grade_lesson_id"`
	GradeStudentID      uuid.UUID `json:"grade_student_id"`
	GradeValue          int       `json:"grade_value"`
	GradeComment        *string   `json:"grade_comment,omitempty"`
	GradeCreatedAt      time.Time `json:"grade_created_at"`
	GradeUpdatedAt      time.Time `json:"grade_updated_at"`
}

func FromModel(m *model.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:             m.GradeID,
		GradeOrganizationID: m.GradeOrganizationID,
		GradeLessonID:       m.GradeLessonID,
		GradeStudentID:      m.GradeStudentID,
		GradeValue:          m.GradeValue,
		GradeComment:        m.GradeComment,
		GradeCreatedAt:      m.GradeCreatedAt,
		GradeUpdatedAt:      m.GradeUpdatedAt,
	}
}

func FromModels(list []model.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
