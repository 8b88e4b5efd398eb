package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "classhub_backend/internals/features/school/lessons/model"
)

/* =========================
   Conflict checking
========================= */

// ProposedLesson carries the fields the conflict checker inspects. Nil
// classroom/group excludes that axis from the resource query entirely.
type ProposedLesson struct {
	Date        time.Time
	Slot        TimeSlot
	TeacherID   uuid.UUID
	ClassroomID *uuid.UUID
	GroupID     *uuid.UUID
}

type ConflictingLesson struct {
	LessonID uuid.UUID `json:"lesson_id"`
	Title    string    `json:"title"`
	Slot     TimeSlot  `json:"slot"`
}

// ConflictError is returned when a proposed slot overlaps an existing lesson
// on a shared resource. It carries enough for the caller to present
// actionable feedback: the date, every clashing lesson, and the free windows
// left inside business hours.
type ConflictError struct {
	Date      time.Time           `json:"date"`
	FreeSlots []TimeSlot          `json:"free_slots"`
	Conflicts []ConflictingLesson `json:"conflicts"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("scheduling conflict on %s: %d overlapping lesson(s)",
		e.Date.Format("2006-01-02"), len(e.Conflicts))
}

func (e *ConflictError) Payload() map[string]any {
	slots := make([]string, 0, len(e.FreeSlots))
	for _, s := range e.FreeSlots {
		slots = append(slots, s.String())
	}
	return map[string]any{
		"date":       e.Date.Format("2006-01-02"),
		"free_slots": slots,
		"conflicts":  e.Conflicts,
	}
}

// CheckAloneLesson verifies that the proposed slot can be placed on its date
// against every same-organization lesson sharing the teacher, classroom or
// group. excludeLessonID skips the lesson being updated (uuid.Nil for
// creates). The caller is expected to run this inside the same transaction
// as the write, at serializable isolation; the exclusion constraint in the
// database is the backstop.
func CheckAloneLesson(tx *gorm.DB, orgID, excludeLessonID uuid.UUID, p ProposedLesson, window TimeSlot) error {
	if !p.Slot.Valid() {
		return ErrInvalidSlot
	}

	q := tx.Model(&m.LessonModel{}).
		Where("lesson_organization_id = ? AND lesson_date = ? AND lesson_is_canceled = FALSE", orgID, p.Date)
	if excludeLessonID != uuid.Nil {
		q = q.Where("lesson_id <> ?", excludeLessonID)
	}

	// Any one shared resource with overlapping time is disqualifying, so the
	// candidate set is the union across the three axes.
	axis := tx.Where("lesson_teacher_id = ?", p.TeacherID)
	if p.ClassroomID != nil {
		axis = axis.Or("lesson_classroom_id = ?", *p.ClassroomID)
	}
	if p.GroupID != nil {
		axis = axis.Or("lesson_group_id = ?", *p.GroupID)
	}
	q = q.Where(axis)

	var neighbors []m.LessonModel
	if err := q.Find(&neighbors).Error; err != nil {
		return err
	}

	existing := make([]TimeSlot, 0, len(neighbors))
	for _, n := range neighbors {
		existing = append(existing, TimeSlot{Start: n.LessonStartMinutes, End: n.LessonEndMinutes})
	}

	if CanPlace(p.Slot, existing) {
		return nil
	}

	conflict := &ConflictError{Date: p.Date, FreeSlots: FindFreeSlots(existing, window)}
	for _, n := range neighbors {
		slot := TimeSlot{Start: n.LessonStartMinutes, End: n.LessonEndMinutes}
		if p.Slot.Overlaps(slot) {
			conflict.Conflicts = append(conflict.Conflicts, ConflictingLesson{
				LessonID: n.LessonID,
				Title:    n.LessonTitle,
				Slot:     slot,
			})
		}
	}
	return conflict
}

// CheckTemplateLessons runs the single-lesson check for every not-completed
// lesson still linked to the template, each against its own date with the
// proposed field set. The first conflict aborts the whole batch; nothing is
// partially applied.
func CheckTemplateLessons(tx *gorm.DB, orgID, templateID uuid.UUID, proposed ProposedLesson, window TimeSlot) error {
	if !proposed.Slot.Valid() {
		return ErrInvalidSlot
	}

	var linked []m.LessonModel
	if err := tx.
		Where("lesson_organization_id = ? AND lesson_template_id = ? AND lesson_is_completed = FALSE", orgID, templateID).
		Order("lesson_date ASC").
		Find(&linked).Error; err != nil {
		return err
	}

	for _, lesson := range linked {
		p := proposed
		p.Date = lesson.LessonDate
		if err := CheckAloneLesson(tx, orgID, lesson.LessonID, p, window); err != nil {
			return err
		}
	}
	return nil
}
