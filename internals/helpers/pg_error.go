package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// pgSQLErr matches pgconn.PgError (and anything else carrying a SQLSTATE)
// without importing the driver package.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError translates the constraint violations this schema relies on into
// client-facing statuses.
//
//	23P01 exclusion_violation  (schedule overlap caught by the DB backstop)
//	23503 foreign_key_violation
//	23505 unique_violation     (e.g. one grade per (student, lesson))
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Scheduling conflict: time range overlaps an existing lesson."
		case "23503":
			return http.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate record (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
