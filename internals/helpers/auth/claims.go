package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys populated by the JWT middleware.
const (
	LocalUserID         = "user_id"
	LocalRole           = "role"
	LocalOrganizationID = "organization_id"
)

var ErrNoOrganizationScope = errors.New("organization scope missing from token")

// GetOrganizationIDFromToken returns the tenant the caller is acting for.
// Every query below the controller layer takes this id explicitly; nothing
// reads it from ambient state.
func GetOrganizationIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocalOrganizationID).(string)
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, ErrNoOrganizationScope
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrNoOrganizationScope
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocalUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("user id missing from token")
	}
	return id, nil
}

func role(c *fiber.Ctx) string {
	r, _ := c.Locals(LocalRole).(string)
	return r
}

func IsAdmin(c *fiber.Ctx) bool   { return role(c) == "admin" }
func IsTeacher(c *fiber.Ctx) bool { return role(c) == "teacher" }
func IsStudent(c *fiber.Ctx) bool { return role(c) == "student" }
