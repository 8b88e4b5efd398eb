package service

import (
	"errors"
	"fmt"
	"sort"

	helper "classhub_backend/internals/helpers"
)

/* =========================
   TimeSlot
========================= */

// TimeSlot is a half-open [Start, End) interval in minutes since midnight.
type TimeSlot struct {
	Start int `json:"start_minutes"`
	End   int `json:"end_minutes"`
}

var ErrInvalidSlot = errors.New("end time must be strictly after start time")

func (s TimeSlot) Valid() bool { return s.Start < s.End }

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s-%s", helper.FormatMinutesOfDay(s.Start), helper.FormatMinutesOfDay(s.End))
}

// Overlaps reports whether two half-open slots intersect. Slots that merely
// touch (a.End == b.Start) do not overlap, so back-to-back lessons are fine.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start < other.End && other.Start < s.End
}

// CanPlace reports whether candidate fits alongside every existing slot.
// An invalid candidate is rejected before anything else looks at it.
func CanPlace(candidate TimeSlot, existing []TimeSlot) bool {
	if !candidate.Valid() {
		return false
	}
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return false
		}
	}
	return true
}

// FindFreeSlots returns the gaps between the occupied slots, bounded by the
// organization's business-hours window. Used for the conflict error payload
// only; nothing auto-selects a slot.
func FindFreeSlots(existing []TimeSlot, window TimeSlot) []TimeSlot {
	if !window.Valid() {
		return nil
	}

	occupied := make([]TimeSlot, 0, len(existing))
	for _, e := range existing {
		if !e.Valid() || e.End <= window.Start || e.Start >= window.End {
			continue
		}
		occupied = append(occupied, e)
	}
	sort.Slice(occupied, func(i, j int) bool { return occupied[i].Start < occupied[j].Start })

	free := []TimeSlot{}
	cursor := window.Start
	for _, o := range occupied {
		if o.Start > cursor {
			free = append(free, TimeSlot{Start: cursor, End: min(o.Start, window.End)})
		}
		if o.End > cursor {
			cursor = o.End
		}
	}
	if cursor < window.End {
		free = append(free, TimeSlot{Start: cursor, End: window.End})
	}
	return free
}
