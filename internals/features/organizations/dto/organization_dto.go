package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "classhub_backend/internals/features/organizations/model"
	helper "classhub_backend/internals/helpers"
)

/* =========================================================
   REQUESTS
   ========================================================= */

// Patch (partial). Business hours arrive as "HH:MM" strings, the academic
// year-end cutoff as "MM-DD".
type PatchOrganizationRequest struct {
	OrganizationName *string `json:"organization_name" validate:"omitempty,min=2,max=160"`
	OrganizationSlug *string `json:"organization_slug" validate:"omitempty,max=160"`

	OrganizationTimezone *string `json:"organization_timezone" validate:"omitempty,max=64"`

	OrganizationDayStart *string `json:"organization_day_start" validate:"omitempty"`
	OrganizationDayEnd   *string `json:"organization_day_end"   validate:"omitempty"`

	OrganizationAcademicYearEnd *string `json:"organization_academic_year_end" validate:"omitempty"`

	OrganizationSettings *datatypes.JSON `json:"organization_settings"`
}

func (r PatchOrganizationRequest) Apply(m *model.OrganizationModel) error {
	if r.OrganizationName != nil {
		m.OrganizationName = *r.OrganizationName
	}
	if r.OrganizationSlug != nil {
		m.OrganizationSlug = helper.TrimPtr(r.OrganizationSlug)
	}
	if r.OrganizationTimezone != nil {
		m.OrganizationTimezone = *r.OrganizationTimezone
	}
	if r.OrganizationDayStart != nil {
		start, err := helper.ParseMinutesOfDay(*r.OrganizationDayStart)
		if err != nil {
			return err
		}
		m.OrganizationDayStart = start
	}
	if r.OrganizationDayEnd != nil {
		end, err := helper.ParseMinutesOfDay(*r.OrganizationDayEnd)
		if err != nil {
			return err
		}
		m.OrganizationDayEnd = end
	}
	if r.OrganizationAcademicYearEnd != nil {
		if *r.OrganizationAcademicYearEnd == "" {
			m.OrganizationAcademicYearEnd = nil
		} else {
			md, err := model.ParseMonthDay(*r.OrganizationAcademicYearEnd)
			if err != nil {
				return err
			}
			m.OrganizationAcademicYearEnd = &md
		}
	}
	if r.OrganizationSettings != nil {
		m.OrganizationSettings = *r.OrganizationSettings
	}
	return nil
}

/* =========================================================
   RESPONSES
   ========================================================= */

type OrganizationResponse struct {
	OrganizationID   uuid.UUID `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	OrganizationSlug *string   `json:"organization_slug,omitempty"`

	OrganizationTimezone string `json:"organization_timezone"`

	OrganizationDayStart string `json:"organization_day_start"`
	OrganizationDayEnd   string `json:"organization_day_end"`

	OrganizationAcademicYearEnd *string `json:"organization_academic_year_end,omitempty"`

	OrganizationSettings datatypes.JSON `json:"organization_settings,omitempty"`

	OrganizationCreatedAt time.Time `json:"organization_created_at"`
	OrganizationUpdatedAt time.Time `json:"organization_updated_at"`
}

func FromModel(m *model.OrganizationModel) OrganizationResponse {
	var cutoff *string
	if m.OrganizationAcademicYearEnd != nil {
		s := m.OrganizationAcademicYearEnd.String()
		cutoff = &s
	}
	return OrganizationResponse{
		OrganizationID:              m.OrganizationID,
		OrganizationName:            m.OrganizationName,
		OrganizationSlug:            m.OrganizationSlug,
		OrganizationTimezone:        m.OrganizationTimezone,
		OrganizationDayStart:        helper.FormatMinutesOfDay(m.OrganizationDayStart),
		OrganizationDayEnd:          helper.FormatMinutesOfDay(m.OrganizationDayEnd),
		OrganizationAcademicYearEnd: cutoff,
		OrganizationSettings:        m.OrganizationSettings,
		OrganizationCreatedAt:       m.OrganizationCreatedAt,
		OrganizationUpdatedAt:       m.OrganizationUpdatedAt,
	}
}
