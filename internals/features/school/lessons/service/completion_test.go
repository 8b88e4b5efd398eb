package service

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLocalDayAndMinute(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2024, time.January, 15, 10, 31, 45, 0, loc)
	today, minutes := LocalDayAndMinute(now)

	if !today.Equal(day(2024, time.January, 15)) {
		t.Errorf("today = %v, want 2024-01-15", today)
	}
	if minutes != 10*60+31 {
		t.Errorf("minutes = %d, want %d", minutes, 10*60+31)
	}
}

func TestLessonDue(t *testing.T) {
	today := day(2024, time.January, 15)
	nowMin := 10*60 + 31 // 10:31 local

	tests := []struct {
		name       string
		lessonDate time.Time
		endMinutes int
		want       bool
	}{
		{name: "ended earlier today", lessonDate: day(2024, time.January, 15), endMinutes: 10*60 + 30, want: true},
		{name: "ends exactly now", lessonDate: day(2024, time.January, 15), endMinutes: 10*60 + 31, want: true},
		{name: "still running", lessonDate: day(2024, time.January, 15), endMinutes: 11 * 60, want: false},
		{name: "yesterday always due", lessonDate: day(2024, time.January, 14), endMinutes: 23 * 60, want: true},
		{name: "tomorrow never due", lessonDate: day(2024, time.January, 16), endMinutes: 9 * 60, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LessonDue(tt.lessonDate, tt.endMinutes, today, nowMin); got != tt.want {
				t.Errorf("LessonDue(%v, %d) = %v, want %v", tt.lessonDate, tt.endMinutes, got, tt.want)
			}
		})
	}
}
