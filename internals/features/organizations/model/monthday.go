package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

/* =========================
   Scalar: MonthDay
========================= */

// MonthDay is a recurring calendar anchor without a year ("MM-DD"), used for
// the organization-wide academic-year cutoff. Stored as text.
type MonthDay struct {
	Month time.Month
	Day   int
}

func ParseMonthDay(s string) (MonthDay, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("01-02", s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q (want MM-DD): %w", s, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (md MonthDay) IsZero() bool {
	return md.Month == 0 && md.Day == 0
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// NextOnOrAfter resolves the anchor to its nearest concrete occurrence on or
// after ref, in ref's location. Feb 29 on a non-leap year clamps to Feb 28.
func (md MonthDay) NextOnOrAfter(ref time.Time) time.Time {
	resolve := func(year int) time.Time {
		day := md.Day
		if md.Month == time.February && day == 29 && !isLeapYear(year) {
			day = 28
		}
		return time.Date(year, md.Month, day, 0, 0, 0, 0, ref.Location())
	}
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	candidate := resolve(ref.Year())
	if candidate.Before(refDay) {
		candidate = resolve(ref.Year() + 1)
	}
	return candidate
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

/* =========================
   sql.Scanner / driver.Valuer
========================= */

func (md *MonthDay) Scan(value interface{}) error {
	if value == nil {
		*md = MonthDay{}
		return nil
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into MonthDay", value)
	}
	if strings.TrimSpace(s) == "" {
		*md = MonthDay{}
		return nil
	}
	parsed, err := ParseMonthDay(s)
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

func (md MonthDay) Value() (driver.Value, error) {
	if md.IsZero() {
		return nil, nil
	}
	return md.String(), nil
}

func (MonthDay) GormDataType() string { return "varchar(5)" }
