// file: internals/features/school/lessons/controller/lesson_controller.go
package controller

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"

	orgModel "classhub_backend/internals/features/organizations/model"
	d "classhub_backend/internals/features/school/lessons/dto"
	m "classhub_backend/internals/features/school/lessons/model"
	svc "classhub_backend/internals/features/school/lessons/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type LessonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *LessonController {
	return &LessonController{DB: db, Validate: v}
}

func (ctl *LessonController) loadOrg(orgID uuid.UUID) (*orgModel.OrganizationModel, error) {
	var org orgModel.OrganizationModel
	if err := ctl.DB.Where("organization_id = ?", orgID).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func businessWindow(org *orgModel.OrganizationModel) svc.TimeSlot {
	return svc.TimeSlot{Start: org.OrganizationDayStart, End: org.OrganizationDayEnd}
}

func writeConflictError(c *fiber.Ctx, err error) error {
	var conflict *svc.ConflictError
	switch {
	case errors.Is(err, svc.ErrInvalidSlot):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &conflict):
		return helper.JsonErrorWithData(c, http.StatusConflict, conflict.Error(), conflict.Payload())
	default:
		return helper.WritePGError(c, err)
	}
}

/*
========================= Create =========================
*/

// POST /api/a/lessons?force=true bypasses the conflict check entirely
// (administrative override).
func (ctl *LessonController) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	model, err := req.ToModel(orgID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if model.LessonEndMinutes <= model.LessonStartMinutes {
		return helper.JsonError(c, http.StatusBadRequest, svc.ErrInvalidSlot.Error())
	}

	org, err := ctl.loadOrg(orgID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	force := c.QueryBool("force")

	// Serializable so the conflict pre-check and the insert see one world;
	// the exclusion constraint catches whatever still races through.
	tx := ctl.DB.Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, tx.Error.Error())
	}
	defer tx.Rollback()

	if !force {
		proposed := svc.ProposedLesson{
			Date:        model.LessonDate,
			Slot:        svc.TimeSlot{Start: model.LessonStartMinutes, End: model.LessonEndMinutes},
			TeacherID:   model.LessonTeacherID,
			ClassroomID: model.LessonClassroomID,
			GroupID:     model.LessonGroupID,
		}
		if err := svc.CheckAloneLesson(tx, orgID, uuid.Nil, proposed, businessWindow(org)); err != nil {
			return writeConflictError(c, err)
		}
	}

	if err := tx.Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := tx.Commit().Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Lesson created", d.FromModel(&model))
}

/* =========================
   List / Detail
   ========================= */

func (ctl *LessonController) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var q d.ListLessonQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	query := ctl.DB.Model(&m.LessonModel{}).
		Where("lesson_organization_id = ?", orgID)

	if q.DateFrom != nil {
		from, _ := helper.ParseDateYYYYMMDD(*q.DateFrom)
		query = query.Where("lesson_date >= ?", from)
	}
	if q.DateTo != nil {
		to, _ := helper.ParseDateYYYYMMDD(*q.DateTo)
		query = query.Where("lesson_date <= ?", to)
	}
	if q.TeacherID != nil {
		query = query.Where("lesson_teacher_id = ?", *q.TeacherID)
	}
	if q.GroupID != nil {
		query = query.Where("lesson_group_id = ?", *q.GroupID)
	}
	if q.Completed != nil {
		query = query.Where("lesson_is_completed = ?", *q.Completed)
	}
	if q.Canceled != nil {
		query = query.Where("lesson_is_canceled = ?", *q.Canceled)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var lessons []m.LessonModel
	if err := query.
		Order("lesson_date ASC, lesson_start_minutes ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&lessons).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Lessons", d.FromModels(lessons),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *LessonController) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var lesson m.LessonModel
	// Scoped by organization: a foreign tenant's id looks exactly like a
	// missing one.
	if err := ctl.DB.
		Where("lesson_id = ? AND lesson_organization_id = ?", id, orgID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Lesson", d.FromModel(&lesson))
}

/* =========================
   Patch (conflict-checked)
   ========================= */

func (ctl *LessonController) Patch(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	org, err := ctl.loadOrg(orgID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	force := c.QueryBool("force")

	tx := ctl.DB.Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, tx.Error.Error())
	}
	defer tx.Rollback()

	var existing m.LessonModel
	if err := tx.
		Where("lesson_id = ? AND lesson_organization_id = ?", id, orgID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if existing.LessonEndMinutes <= existing.LessonStartMinutes {
		return helper.JsonError(c, http.StatusBadRequest, svc.ErrInvalidSlot.Error())
	}

	if !force {
		proposed := svc.ProposedLesson{
			Date:        existing.LessonDate,
			Slot:        svc.TimeSlot{Start: existing.LessonStartMinutes, End: existing.LessonEndMinutes},
			TeacherID:   existing.LessonTeacherID,
			ClassroomID: existing.LessonClassroomID,
			GroupID:     existing.LessonGroupID,
		}
		if err := svc.CheckAloneLesson(tx, orgID, existing.LessonID, proposed, businessWindow(org)); err != nil {
			return writeConflictError(c, err)
		}
	}

	if err := tx.Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := tx.Commit().Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Lesson updated", d.FromModel(&existing))
}

/* =========================
   Cancel / Soft Delete
   ========================= */

func (ctl *LessonController) Cancel(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var lesson m.LessonModel
	if err := ctl.DB.
		Where("lesson_id = ? AND lesson_organization_id = ?", id, orgID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		return helper.WritePGError(c, err)
	}

	lesson.LessonIsCanceled = true
	if err := ctl.DB.Save(&lesson).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Lesson canceled", d.FromModel(&lesson))
}

func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var lesson m.LessonModel
	if err := ctl.DB.
		Where("lesson_id = ? AND lesson_organization_id = ?", id, orgID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lesson not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.Delete(&lesson).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Lesson deleted", d.FromModel(&lesson))
}
