// file: internals/features/school/lesson_templates/controller/template_controller.go
package controller

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"

	orgModel "classhub_backend/internals/features/organizations/model"
	d "classhub_backend/internals/features/school/lesson_templates/dto"
	m "classhub_backend/internals/features/school/lesson_templates/model"
	svc "classhub_backend/internals/features/school/lesson_templates/service"
	lessonSvc "classhub_backend/internals/features/school/lessons/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type LessonTemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *LessonTemplateController {
	return &LessonTemplateController{DB: db, Validate: v}
}

/*
========================= Create (materializes) =========================
*/

// Template creation and the bulk expansion commit together: a failed
// expansion leaves neither the template nor a partial series behind.
func (ctl *LessonTemplateController) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CreateLessonTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	model, err := req.ToModel(orgID, ownerID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if model.LessonTemplateEndMinutes <= model.LessonTemplateStartMinutes {
		return helper.JsonError(c, http.StatusBadRequest, lessonSvc.ErrInvalidSlot.Error())
	}

	var org orgModel.OrganizationModel
	if err := ctl.DB.Where("organization_id = ?", orgID).First(&org).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var generated int
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		lessons, err := svc.Materialize(tx, &model, &org)
		if err != nil {
			return err
		}
		generated = len(lessons)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrMissingInterval):
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, svc.ErrMissingCutoff):
			return helper.JsonErrorWithCode(c, http.StatusInternalServerError, "CONFIG_ERROR", err.Error())
		default:
			return helper.WritePGError(c, err)
		}
	}

	return helper.JsonCreated(c, "Template created", fiber.Map{
		"template":          d.FromModel(&model),
		"generated_lessons": generated,
	})
}

/* =========================
   List / Detail
   ========================= */

func (ctl *LessonTemplateController) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	query := ctl.DB.Model(&m.LessonTemplateModel{}).
		Where("lesson_template_organization_id = ?", orgID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var templates []m.LessonTemplateModel
	if err := query.
		Order("lesson_template_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&templates).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Templates", d.FromModels(templates),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *LessonTemplateController) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var tpl m.LessonTemplateModel
	if err := ctl.DB.
		Where("lesson_template_id = ? AND lesson_template_organization_id = ?", id, orgID).
		First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "template not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Template", d.FromModel(&tpl))
}

/*
========================= Patch (propagates) =========================
*/

// Edits are conflict-checked against every not-completed linked lesson
// (all-or-nothing, ?force=true to skip), then propagated in one bulk update.
func (ctl *LessonTemplateController) Patch(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchLessonTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var org orgModel.OrganizationModel
	if err := ctl.DB.Where("organization_id = ?", orgID).First(&org).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	force := c.QueryBool("force")

	tx := ctl.DB.Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, tx.Error.Error())
	}
	defer tx.Rollback()

	var existing m.LessonTemplateModel
	if err := tx.
		Where("lesson_template_id = ? AND lesson_template_organization_id = ?", id, orgID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "template not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if existing.LessonTemplateEndMinutes <= existing.LessonTemplateStartMinutes {
		return helper.JsonError(c, http.StatusBadRequest, lessonSvc.ErrInvalidSlot.Error())
	}

	if !force {
		proposed := lessonSvc.ProposedLesson{
			Slot: lessonSvc.TimeSlot{
				Start: existing.LessonTemplateStartMinutes,
				End:   existing.LessonTemplateEndMinutes,
			},
			TeacherID:   existing.LessonTemplateTeacherID,
			ClassroomID: existing.LessonTemplateClassroomID,
			GroupID:     existing.LessonTemplateGroupID,
		}
		window := lessonSvc.TimeSlot{Start: org.OrganizationDayStart, End: org.OrganizationDayEnd}
		if err := lessonSvc.CheckTemplateLessons(tx, orgID, existing.LessonTemplateID, proposed, window); err != nil {
			var conflict *lessonSvc.ConflictError
			switch {
			case errors.Is(err, lessonSvc.ErrInvalidSlot):
				return helper.JsonError(c, http.StatusBadRequest, err.Error())
			case errors.As(err, &conflict):
				return helper.JsonErrorWithData(c, http.StatusConflict, conflict.Error(), conflict.Payload())
			default:
				return helper.WritePGError(c, err)
			}
		}
	}

	if err := tx.Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	updated, err := svc.PropagateTemplateEdit(tx, &existing)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if err := tx.Commit().Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Template updated", fiber.Map{
		"template":        d.FromModel(&existing),
		"updated_lessons": updated,
	})
}

/* =========================
   Soft Delete
   ========================= */

// Deleting a template keeps its generated lessons; they simply stop
// receiving propagated edits.
func (ctl *LessonTemplateController) Delete(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var tpl m.LessonTemplateModel
	if err := ctl.DB.
		Where("lesson_template_id = ? AND lesson_template_organization_id = ?", id, orgID).
		First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "template not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.Delete(&tpl).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Template deleted", d.FromModel(&tpl))
}
