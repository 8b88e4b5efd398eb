package service

import (
	"reflect"
	"testing"
)

func slot(start, end int) TimeSlot { return TimeSlot{Start: start, End: end} }

func TestOverlapsSymmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{name: "identical", a: slot(540, 630), b: slot(540, 630), want: true},
		{name: "partial overlap", a: slot(540, 630), b: slot(600, 660), want: true},
		{name: "containment", a: slot(540, 700), b: slot(560, 600), want: true},
		{name: "touching end-start", a: slot(540, 630), b: slot(630, 690), want: false},
		{name: "disjoint", a: slot(540, 600), b: slot(660, 720), want: false},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v (not symmetric)", got, tt.want)
			}
		})
	}
}

func TestCanPlace(t *testing.T) {
	existing := []TimeSlot{slot(540, 630), slot(720, 780)} // 09:00-10:30, 12:00-13:00

	tests := []struct {
		name      string
		candidate TimeSlot
		want      bool
	}{
		{name: "same slot conflicts", candidate: slot(540, 630), want: false},
		{name: "overlap into first", candidate: slot(600, 700), want: false},
		{name: "boundary adjacent is fine", candidate: slot(630, 690), want: true},
		{name: "gap between slots", candidate: slot(640, 710), want: true},
		{name: "zero-length rejected", candidate: slot(600, 600), want: false},
		{name: "inverted rejected", candidate: slot(700, 600), want: false},
		{name: "empty existing", candidate: slot(540, 630), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := existing
			if tt.name == "empty existing" {
				ex = nil
			}
			if got := CanPlace(tt.candidate, ex); got != tt.want {
				t.Errorf("CanPlace(%v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestFindFreeSlots(t *testing.T) {
	window := slot(480, 1200) // 08:00-20:00

	tests := []struct {
		name     string
		existing []TimeSlot
		want     []TimeSlot
	}{
		{
			name:     "empty day is one big window",
			existing: nil,
			want:     []TimeSlot{slot(480, 1200)},
		},
		{
			name:     "gaps around one lesson",
			existing: []TimeSlot{slot(540, 630)},
			want:     []TimeSlot{slot(480, 540), slot(630, 1200)},
		},
		{
			name:     "unsorted input",
			existing: []TimeSlot{slot(720, 780), slot(540, 630)},
			want:     []TimeSlot{slot(480, 540), slot(630, 720), slot(780, 1200)},
		},
		{
			name:     "overlapping existing slots merge",
			existing: []TimeSlot{slot(540, 660), slot(600, 720)},
			want:     []TimeSlot{slot(480, 540), slot(720, 1200)},
		},
		{
			name:     "slot outside window ignored",
			existing: []TimeSlot{slot(60, 120)},
			want:     []TimeSlot{slot(480, 1200)},
		},
		{
			name:     "fully booked",
			existing: []TimeSlot{slot(480, 1200)},
			want:     []TimeSlot{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindFreeSlots(tt.existing, window)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindFreeSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}
