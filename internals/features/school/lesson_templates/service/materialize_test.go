package service

import (
	"errors"
	"testing"
	"time"

	orgModel "classhub_backend/internals/features/organizations/model"
	templateModel "classhub_backend/internals/features/school/lesson_templates/model"
	lessonModel "classhub_backend/internals/features/school/lessons/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandDates(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		interval int
		end      time.Time
		want     []time.Time
	}{
		{
			name:     "weekly over two weeks, end inclusive",
			start:    day(2024, time.January, 1),
			interval: 7,
			end:      day(2024, time.January, 15),
			want:     []time.Time{day(2024, time.January, 1), day(2024, time.January, 8), day(2024, time.January, 15)},
		},
		{
			name:     "end between steps excluded",
			start:    day(2024, time.January, 1),
			interval: 7,
			end:      day(2024, time.January, 14),
			want:     []time.Time{day(2024, time.January, 1), day(2024, time.January, 8)},
		},
		{
			name:     "single occurrence when end equals start",
			start:    day(2024, time.January, 1),
			interval: 7,
			end:      day(2024, time.January, 1),
			want:     []time.Time{day(2024, time.January, 1)},
		},
		{
			name:     "end before start yields nothing",
			start:    day(2024, time.January, 10),
			interval: 7,
			end:      day(2024, time.January, 1),
			want:     nil,
		},
		{
			name:     "non-positive interval yields nothing",
			start:    day(2024, time.January, 1),
			interval: 0,
			end:      day(2024, time.December, 31),
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandDates(tt.start, tt.interval, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("ExpandDates() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("ExpandDates()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEffectiveEndDate(t *testing.T) {
	cutoff := orgModel.MonthDay{Month: time.August, Day: 31}

	tests := []struct {
		name    string
		tpl     templateModel.LessonTemplateModel
		org     orgModel.OrganizationModel
		want    time.Time
		wantErr error
	}{
		{
			name: "template end date wins",
			tpl: templateModel.LessonTemplateModel{
				LessonTemplateStartDate: day(2024, time.January, 1),
				LessonTemplateEndDate:   ptrDay(2024, time.March, 1),
			},
			org:  orgModel.OrganizationModel{OrganizationAcademicYearEnd: &cutoff},
			want: day(2024, time.March, 1),
		},
		{
			name: "org cutoff resolved from start date",
			tpl: templateModel.LessonTemplateModel{
				LessonTemplateStartDate: day(2024, time.January, 1),
			},
			org:  orgModel.OrganizationModel{OrganizationAcademicYearEnd: &cutoff},
			want: day(2024, time.August, 31),
		},
		{
			name: "cutoff already passed rolls to next year",
			tpl: templateModel.LessonTemplateModel{
				LessonTemplateStartDate: day(2024, time.September, 2),
			},
			org:  orgModel.OrganizationModel{OrganizationAcademicYearEnd: &cutoff},
			want: day(2025, time.August, 31),
		},
		{
			name: "missing cutoff is a configuration error",
			tpl: templateModel.LessonTemplateModel{
				LessonTemplateStartDate: day(2024, time.January, 1),
			},
			org:     orgModel.OrganizationModel{},
			wantErr: ErrMissingCutoff,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EffectiveEndDate(&tt.tpl, &tt.org)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("EffectiveEndDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !got.Equal(tt.want) {
				t.Errorf("EffectiveEndDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildLessons(t *testing.T) {
	tpl := templateModel.LessonTemplateModel{
		LessonTemplateTitle:        "Algebra",
		LessonTemplateStartMinutes: 540,
		LessonTemplateEndMinutes:   630,
		LessonTemplateStartDate:    day(2024, time.January, 1),
		LessonTemplateIntervalDays: 7,
	}
	dates := ExpandDates(tpl.LessonTemplateStartDate, 7, day(2024, time.January, 15))

	lessons := BuildLessons(&tpl, dates)
	if len(lessons) != 3 {
		t.Fatalf("got %d lessons, want 3", len(lessons))
	}
	for i, l := range lessons {
		if !l.LessonDate.Equal(dates[i]) {
			t.Errorf("lesson[%d] date = %v, want %v", i, l.LessonDate, dates[i])
		}
		if l.LessonTitle != "Algebra" || l.LessonStartMinutes != 540 || l.LessonEndMinutes != 630 {
			t.Errorf("lesson[%d] did not copy template fields: %+v", i, l)
		}
		if l.LessonTemplateID == nil {
			t.Errorf("lesson[%d] missing template back-reference", i)
		}
		// 2024-01-01 is a Monday; each step of 7 days stays a Monday.
		if wd := lessonModel.ISOWeekday(l.LessonDate); wd != 1 {
			t.Errorf("lesson[%d] weekday = %d, want 1", i, wd)
		}
	}
}

func ptrDay(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}
