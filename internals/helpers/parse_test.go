package helper

import (
	"testing"
	"time"
)

func TestParseMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"20:00", 1200, false},
		{"23:59", 1439, false},
		{"10:30:00", 630, false},
		{"24:00", 0, true},
		{"9h30", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinutesOfDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMinutesOfDay(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMinutesOfDay(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMinutesOfDay(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{631, "10:31"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := FormatMinutesOfDay(tt.in); got != tt.want {
			t.Errorf("FormatMinutesOfDay(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDateYYYYMMDD(t *testing.T) {
	got, err := ParseDateYYYYMMDD("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ParseDateYYYYMMDD("2023-02-29"); err == nil {
		t.Error("expected error for non-leap Feb 29")
	}
	if _, err := ParseDateYYYYMMDD("29/02/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestTrimPtr(t *testing.T) {
	if TrimPtr(nil) != nil {
		t.Error("nil in, nil out")
	}
	blank := "   "
	if TrimPtr(&blank) != nil {
		t.Error("blank string should collapse to nil")
	}
	s := "  algebra "
	got := TrimPtr(&s)
	if got == nil || *got != "algebra" {
		t.Errorf("got %v, want algebra", got)
	}
}
