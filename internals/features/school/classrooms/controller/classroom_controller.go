// file: internals/features/school/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "classhub_backend/internals/features/school/classrooms/dto"
	m "classhub_backend/internals/features/school/classrooms/model"
	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassroomController {
	return &ClassroomController{DB: db, Validate: v}
}

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	model := req.ToModel(orgID)
	if err := ctl.DB.Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Classroom created", d.FromModel(&model))
}

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	query := ctl.DB.Model(&m.ClassroomModel{}).
		Where("classroom_organization_id = ?", orgID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rooms []m.ClassroomModel
	if err := query.
		Order("classroom_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rooms).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Classrooms", d.FromModels(rooms),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ClassroomController) findOwned(orgID, id uuid.UUID) (*m.ClassroomModel, error) {
	var room m.ClassroomModel
	if err := ctl.DB.
		Where("classroom_id = ? AND classroom_organization_id = ?", id, orgID).
		First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	room, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "classroom not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Classroom", d.FromModel(room))
}

func (ctl *ClassroomController) Patch(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	room, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "classroom not found")
		}
		return helper.WritePGError(c, err)
	}

	req.Apply(room)
	if err := ctl.DB.Save(room).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Classroom updated", d.FromModel(room))
}

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	room, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "classroom not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.Delete(room).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Classroom deleted", d.FromModel(room))
}
