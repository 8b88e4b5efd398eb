// file: internals/features/school/groups/controller/group_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "classhub_backend/internals/features/school/groups/dto"
	m "classhub_backend/internals/features/school/groups/model"
	studentModel "classhub_backend/internals/features/school/students/model"
	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *GroupController {
	return &GroupController{DB: db, Validate: v}
}

/* =========================
   CRUD
   ========================= */

func (ctl *GroupController) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CreateStudentGroupRequest
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
	if err := ctl.DB.Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Group created", d.FromModel(&model))
}

func (ctl *GroupController) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	query := ctl.DB.Model(&m.StudentGroupModel{}).
		Where("student_group_organization_id = ?", orgID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var groups []m.StudentGroupModel
	if err := query.
		Order("student_group_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&groups).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Groups", d.FromModels(groups),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *GroupController) findOwned(orgID, id uuid.UUID) (*m.StudentGroupModel, error) {
	var g m.StudentGroupModel
	if err := ctl.DB.
		Where("student_group_id = ? AND student_group_organization_id = ?", id, orgID).
		First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (ctl *GroupController) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	g, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Group", d.FromModel(g))
}

func (ctl *GroupController) Patch(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchStudentGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	g, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := req.Apply(g); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(g).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Group updated", d.FromModel(g))
}

func (ctl *GroupController) Delete(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	g, err := ctl.findOwned(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}

	// Membership rows go with the group; past lessons and attendance stay.
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("group_student_group_id = ?", g.StudentGroupID).
			Delete(&m.GroupStudentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(g).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Group deleted", d.FromModel(g))
}

/* =========================
   Membership
   ========================= */

// POST /api/a/groups/:id/students
// Duplicate membership maps to 409 via the unique index on (group, student).
func (ctl *GroupController) AddMember(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.AddGroupMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	studentID := uuid.MustParse(req.GroupStudentStudentID)

	if _, err := ctl.findOwned(orgID, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctl.DB.
		Where("student_id = ? AND student_organization_id = ?", studentID, orgID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.WritePGError(c, err)
	}

	member := m.GroupStudentModel{
		GroupStudentOrganizationID: orgID,
		GroupStudentGroupID:        groupID,
		GroupStudentStudentID:      studentID,
	}
	if err := ctl.DB.Create(&member).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Student added to group", d.MemberFromModel(&member))
}

func (ctl *GroupController) RemoveMember(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.
		Where("group_student_organization_id = ? AND group_student_group_id = ? AND group_student_student_id = ?",
			orgID, groupID, studentID).
		Delete(&m.GroupStudentModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "membership not found")
	}
	return helper.JsonDeleted(c, "Student removed from group", fiber.Map{
		"group_student_group_id":   groupID,
		"group_student_student_id": studentID,
	})
}

func (ctl *GroupController) ListMembers(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if _, err := ctl.findOwned(orgID, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "group not found")
		}
		return helper.WritePGError(c, err)
	}

	var members []m.GroupStudentModel
	if err := ctl.DB.
		Where("group_student_organization_id = ? AND group_student_group_id = ?", orgID, groupID).
		Order("group_student_created_at ASC").
		Find(&members).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Group members", d.MembersFromModels(members))
}
