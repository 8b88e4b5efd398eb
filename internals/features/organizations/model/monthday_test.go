package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    MonthDay
		wantErr bool
	}{
		{name: "valid", in: "08-31", want: MonthDay{Month: time.August, Day: 31}},
		{name: "padded input", in: " 01-05 ", want: MonthDay{Month: time.January, Day: 5}},
		{name: "leap day", in: "02-29", want: MonthDay{Month: time.February, Day: 29}},
		{name: "empty", in: "", wantErr: true},
		{name: "missing day", in: "08", wantErr: true},
		{name: "month out of range", in: "13-01", wantErr: true},
		{name: "day out of range", in: "06-31", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonthDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonthDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMonthDay(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthDayNextOnOrAfter(t *testing.T) {
	aug31 := MonthDay{Month: time.August, Day: 31}
	feb29 := MonthDay{Month: time.February, Day: 29}

	tests := []struct {
		name string
		md   MonthDay
		ref  time.Time
		want time.Time
	}{
		{name: "later this year", md: aug31, ref: date(2024, time.January, 10), want: date(2024, time.August, 31)},
		{name: "same day counts", md: aug31, ref: date(2024, time.August, 31), want: date(2024, time.August, 31)},
		{name: "already passed rolls over", md: aug31, ref: date(2024, time.September, 1), want: date(2025, time.August, 31)},
		{name: "leap day in leap year", md: feb29, ref: date(2024, time.January, 1), want: date(2024, time.February, 29)},
		{name: "leap day clamps in common year", md: feb29, ref: date(2025, time.January, 1), want: date(2025, time.February, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.md.NextOnOrAfter(tt.ref); !got.Equal(tt.want) {
				t.Errorf("NextOnOrAfter(%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestMonthDayScanValue(t *testing.T) {
	var md MonthDay
	if err := md.Scan("08-31"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if md.String() != "08-31" {
		t.Errorf("String() = %q, want %q", md.String(), "08-31")
	}

	v, err := md.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "08-31" {
		t.Errorf("Value() = %v, want %q", v, "08-31")
	}

	var zero MonthDay
	v, err = zero.Value()
	if err != nil {
		t.Fatalf("Value (zero): %v", err)
	}
	if v != nil {
		t.Errorf("zero Value() = %v, want nil", v)
	}
}
