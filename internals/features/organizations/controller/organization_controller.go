// file: internals/features/organizations/controller/organization_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"

	d "classhub_backend/internals/features/organizations/dto"
	m "classhub_backend/internals/features/organizations/model"
)

type OrganizationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *OrganizationController {
	return &OrganizationController{DB: db, Validate: v}
}

/* =========================
   Me (own organization)
   ========================= */

func (ctl *OrganizationController) GetMe(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var org m.OrganizationModel
	if err := ctl.DB.Where("organization_id = ?", orgID).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "organization not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Organization", d.FromModel(&org))
}

/* =========================
   Patch
   ========================= */

// Timezone changes are validated against the IANA database up front; an org
// with a broken timezone would silently fall out of the completion sweep.
func (ctl *OrganizationController) Patch(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.PatchOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if req.OrganizationTimezone != nil {
		if _, err := time.LoadLocation(*req.OrganizationTimezone); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "unknown timezone: "+*req.OrganizationTimezone)
		}
	}

	var org m.OrganizationModel
	if err := ctl.DB.Where("organization_id = ?", orgID).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "organization not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := req.Apply(&org); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if org.OrganizationDayEnd <= org.OrganizationDayStart {
		return helper.JsonError(c, http.StatusBadRequest, "organization_day_end must be after organization_day_start")
	}

	if err := ctl.DB.Save(&org).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Organization updated", d.FromModel(&org))
}
