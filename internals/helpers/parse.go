package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrEmptyTime = errors.New("empty time")

// ParseDateYYYYMMDD parses "2006-01-02" and anchors it at midnight UTC so
// date-only columns compare cleanly.
func ParseDateYYYYMMDD(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseMinutesOfDay parses "HH:mm" or "HH:mm:ss" into minutes since midnight.
func ParseMinutesOfDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyTime
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("invalid time format (want HH:mm or HH:mm:ss)")
}

// FormatMinutesOfDay renders minutes since midnight as "HH:mm".
func FormatMinutesOfDay(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
