package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	orgModel "classhub_backend/internals/features/organizations/model"
	m "classhub_backend/internals/features/school/lessons/model"
)

/* =========================
   Completion sweep
========================= */

// LocalDayAndMinute splits a wall-clock instant into its date (midnight,
// UTC-anchored to compare against date columns) and minutes since midnight.
func LocalDayAndMinute(now time.Time) (time.Time, int) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day, now.Hour()*60 + now.Minute()
}

// LessonDue reports whether a lesson has ended relative to local "now":
// its date is in the past, or it is today and the end time has passed.
func LessonDue(lessonDate time.Time, endMinutes int, today time.Time, nowMinutes int) bool {
	d := time.Date(lessonDate.Year(), lessonDate.Month(), lessonDate.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return true
	}
	return d.Equal(today) && endMinutes <= nowMinutes
}

// MarkCompletedLessons flips ended lessons to completed, one bulk update per
// organization, computing "now" in each organization's configured timezone.
// Organizations with zero matches are omitted from the result. A broken
// timezone is a configuration error: logged, organization skipped, never
// silently treated as UTC.
func MarkCompletedLessons(db *gorm.DB, orgs []orgModel.OrganizationModel) map[uuid.UUID]int64 {
	results := make(map[uuid.UUID]int64)

	for _, org := range orgs {
		loc, err := time.LoadLocation(org.OrganizationTimezone)
		if err != nil {
			log.Printf("[SWEEP ERROR] org=%s invalid timezone %q: %v",
				org.OrganizationID, org.OrganizationTimezone, err)
			continue
		}
		today, nowMin := LocalDayAndMinute(time.Now().In(loc))

		var candidates []m.LessonModel
		if err := db.
			Where("lesson_organization_id = ? AND lesson_is_canceled = FALSE AND lesson_is_completed = FALSE AND lesson_date <= ?",
				org.OrganizationID, today).
			Find(&candidates).Error; err != nil {
			log.Printf("[SWEEP ERROR] org=%s select: %v", org.OrganizationID, err)
			continue
		}

		due := make([]uuid.UUID, 0, len(candidates))
		for _, l := range candidates {
			if LessonDue(l.LessonDate, l.LessonEndMinutes, today, nowMin) {
				due = append(due, l.LessonID)
			}
		}
		if len(due) == 0 {
			continue
		}

		res := db.Model(&m.LessonModel{}).
			Where("lesson_id IN ?", due).
			Update("lesson_is_completed", true)
		if res.Error != nil {
			log.Printf("[SWEEP ERROR] org=%s update: %v", org.OrganizationID, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			results[org.OrganizationID] = res.RowsAffected
		}
	}
	return results
}

// DescribeSweep renders the per-organization counts the way operators read
// them in logs.
func DescribeSweep(results map[uuid.UUID]int64) string {
	if len(results) == 0 {
		return "no lessons completed"
	}
	out := ""
	for orgID, n := range results {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s: %d", orgID, n)
	}
	return out
}
