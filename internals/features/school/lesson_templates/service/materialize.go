package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	orgModel "classhub_backend/internals/features/organizations/model"
	templateModel "classhub_backend/internals/features/school/lesson_templates/model"
	lessonModel "classhub_backend/internals/features/school/lessons/model"
)

/* =========================
   Recurrence materializer
========================= */

var (
	// ErrMissingInterval: a template cannot be expanded without a positive
	// recurrence interval. Validation error, nothing persisted.
	ErrMissingInterval = errors.New("recurrence interval (days) must be a positive integer")

	// ErrMissingCutoff: the template has no end date and the organization has
	// no academic-year cutoff configured. Configuration error surfaced to the
	// operator, never silently defaulted.
	ErrMissingCutoff = errors.New("organization has no academic year end configured and template has no end date")
)

// ExpandDates generates one date per interval step from start through end,
// inclusive of end.
func ExpandDates(start time.Time, intervalDays int, end time.Time) []time.Time {
	if intervalDays <= 0 {
		return nil
	}
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, intervalDays) {
		dates = append(dates, d)
	}
	return dates
}

// EffectiveEndDate resolves the recurrence horizon: the template's own end
// date when present, else the organization cutoff resolved to its nearest
// occurrence on or after the template start date.
func EffectiveEndDate(t *templateModel.LessonTemplateModel, org *orgModel.OrganizationModel) (time.Time, error) {
	if t.LessonTemplateEndDate != nil {
		return *t.LessonTemplateEndDate, nil
	}
	if org.OrganizationAcademicYearEnd == nil || org.OrganizationAcademicYearEnd.IsZero() {
		return time.Time{}, ErrMissingCutoff
	}
	return org.OrganizationAcademicYearEnd.NextOnOrAfter(t.LessonTemplateStartDate), nil
}

// BuildLessons produces the concrete lesson rows for a template without
// touching the database. Weekday is filled by the lesson's BeforeSave hook.
func BuildLessons(t *templateModel.LessonTemplateModel, dates []time.Time) []lessonModel.LessonModel {
	lessons := make([]lessonModel.LessonModel, 0, len(dates))
	for _, d := range dates {
		templateID := t.LessonTemplateID
		lessons = append(lessons, lessonModel.LessonModel{
			LessonOrganizationID: t.LessonTemplateOrganizationID,
			LessonTitle:          t.LessonTemplateTitle,
			LessonSubject:        t.LessonTemplateSubject,
			LessonDate:           d,
			LessonStartMinutes:   t.LessonTemplateStartMinutes,
			LessonEndMinutes:     t.LessonTemplateEndMinutes,
			LessonTeacherID:      t.LessonTemplateTeacherID,
			LessonClassroomID:    t.LessonTemplateClassroomID,
			LessonGroupID:        t.LessonTemplateGroupID,
			LessonTemplateID:     &templateID,
		})
	}
	return lessons
}

// Materialize expands the template into lesson rows and bulk-inserts them in
// the caller's transaction, so a failed expansion leaves no partial series.
// No per-lesson conflict check runs here: bulk generation is exempt by
// design, only ad-hoc single-lesson writes are checked.
func Materialize(tx *gorm.DB, t *templateModel.LessonTemplateModel, org *orgModel.OrganizationModel) ([]lessonModel.LessonModel, error) {
	if t.LessonTemplateIntervalDays <= 0 {
		return nil, ErrMissingInterval
	}
	end, err := EffectiveEndDate(t, org)
	if err != nil {
		return nil, err
	}

	lessons := BuildLessons(t, ExpandDates(t.LessonTemplateStartDate, t.LessonTemplateIntervalDays, end))
	if len(lessons) == 0 {
		return lessons, nil
	}
	if err := tx.CreateInBatches(&lessons, 200).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// PropagateTemplateEdit overwrites the shared descriptive fields of every
// not-yet-completed lesson linked to the template. Dates, weekdays and
// ownership stay per-lesson; completed lessons are history and never touched.
func PropagateTemplateEdit(tx *gorm.DB, t *templateModel.LessonTemplateModel) (int64, error) {
	res := tx.Model(&lessonModel.LessonModel{}).
		Where("lesson_organization_id = ? AND lesson_template_id = ? AND lesson_is_completed = FALSE",
			t.LessonTemplateOrganizationID, t.LessonTemplateID).
		Updates(map[string]any{
			"lesson_title":         t.LessonTemplateTitle,
			"lesson_subject":       t.LessonTemplateSubject,
			"lesson_start_minutes": t.LessonTemplateStartMinutes,
			"lesson_end_minutes":   t.LessonTemplateEndMinutes,
			"lesson_teacher_id":    t.LessonTemplateTeacherID,
			"lesson_classroom_id":  t.LessonTemplateClassroomID,
			"lesson_group_id":      t.LessonTemplateGroupID,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
