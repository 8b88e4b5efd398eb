// file: internals/features/school/maintenance/controller/maintenance_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgModel "classhub_backend/internals/features/organizations/model"
	attendanceSvc "classhub_backend/internals/features/school/attendance/service"
	lessonSvc "classhub_backend/internals/features/school/lessons/service"
	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"
)

// Manual triggers for the periodic sweeps, scoped to the caller's
// organization. Same code path as the scheduler, just a single-org slice.
type MaintenanceController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: db}
}

func (ctl *MaintenanceController) loadOwnOrg(c *fiber.Ctx) (*orgModel.OrganizationModel, error) {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return nil, helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	var org orgModel.OrganizationModel
	if err := ctl.DB.Where("organization_id = ?", orgID).First(&org).Error; err != nil {
		return nil, helper.WritePGError(c, err)
	}
	return &org, nil
}

// POST /api/a/maintenance/complete-lessons
func (ctl *MaintenanceController) CompleteLessons(c *fiber.Ctx) error {
	org, errResp := ctl.loadOwnOrg(c)
	if org == nil {
		return errResp
	}

	results := lessonSvc.MarkCompletedLessons(ctl.DB, []orgModel.OrganizationModel{*org})
	return helper.JsonOK(c, "Completion sweep finished", fiber.Map{
		"completed_lessons": results[org.OrganizationID],
	})
}

// POST /api/a/maintenance/reconcile-attendance
func (ctl *MaintenanceController) ReconcileAttendance(c *fiber.Ctx) error {
	org, errResp := ctl.loadOwnOrg(c)
	if org == nil {
		return errResp
	}

	results := attendanceSvc.ReconcileAttendance(ctl.DB, []orgModel.OrganizationModel{*org})
	return helper.JsonOK(c, "Attendance reconciliation finished", fiber.Map{
		"created_absences": results[org.OrganizationID],
	})
}
